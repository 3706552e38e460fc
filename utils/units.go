package utils

// Conversion constants shared with the mobile client. Canonical storage is
// always metric (kg, cm); imperial values exist only for display and input.
const (
	PoundsPerKilogram  = 2.20462
	CentimetersPerFoot = 30.48
	CentimetersPerInch = 2.54
)

func KilogramsToPounds(kg float64) float64 {
	return kg * PoundsPerKilogram
}

func PoundsToKilograms(lbs float64) float64 {
	return lbs / PoundsPerKilogram
}

// CentimetersToFeetInches truncates rather than rounds, matching how the
// client renders heights (5'11" stays 5'11" until a full inch is gained).
func CentimetersToFeetInches(cm float64) (feet, inches int) {
	feet = int(cm / CentimetersPerFoot)
	rem := cm - float64(feet)*CentimetersPerFoot
	inches = int(rem / CentimetersPerInch)
	return feet, inches
}

// FeetInchesToCentimeters clamps inches to [0, 11] before converting.
func FeetInchesToCentimeters(feet, inches int) float64 {
	if inches < 0 {
		inches = 0
	}
	if inches > 11 {
		inches = 11
	}
	return float64(feet)*CentimetersPerFoot + float64(inches)*CentimetersPerInch
}

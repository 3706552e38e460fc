package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR estimates basal metabolic rate (kcal/day) with the
// Harris-Benedict equation. Gender "other" averages the male and female
// estimates.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	male := 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	female := 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)

	switch gender {
	case "male":
		return male
	case "female":
		return female
	default:
		return (male + female) / 2
	}
}

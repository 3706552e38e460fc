package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eligrinfeld/shteyn-nutrition/utils"
)

var (
	ErrInvalidAge    = errors.New("age must be positive")
	ErrInvalidWeight = errors.New("weight must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtraActive      ActivityLevel = "Extra Active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtraActive:
		return true
	}
	return false
}

type NutritionGoal string

const (
	GoalWeightLoss    NutritionGoal = "Weight Loss"
	GoalMaintenance   NutritionGoal = "Maintenance"
	GoalMuscleGain    NutritionGoal = "Muscle Gain"
	GoalHealthyEating NutritionGoal = "Healthy Eating"
)

func (g NutritionGoal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMaintenance, GoalMuscleGain, GoalHealthyEating:
		return true
	}
	return false
}

type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

func (u UnitSystem) Valid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// Profile is the user's biometric and preference record. Weight is stored in
// kilograms and height in centimeters regardless of PreferredUnits, which
// only controls how the client renders them. JSON field names match the
// remote store's column names.
type Profile struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Age            int           `json:"age"`
	Weight         float64       `json:"weight"` // kilograms
	Height         float64       `json:"height"` // centimeters
	Gender         Gender        `json:"gender"`
	ActivityLevel  ActivityLevel `json:"activity_level"`
	NutritionGoal  NutritionGoal `json:"nutrition_goal"`
	PreferredUnits UnitSystem    `json:"preferred_units"`
}

func NewProfile(id uuid.UUID, name string, age int, weightKg, heightCm float64,
	gender Gender, activity ActivityLevel, goal NutritionGoal, units UnitSystem) (*Profile, error) {

	if age <= 0 {
		return nil, ErrInvalidAge
	}
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if heightCm <= 0 {
		return nil, ErrInvalidHeight
	}
	if !gender.Valid() {
		return nil, fmt.Errorf("invalid gender %q", gender)
	}
	if !activity.Valid() {
		return nil, fmt.Errorf("invalid activity level %q", activity)
	}
	if !goal.Valid() {
		return nil, fmt.Errorf("invalid nutrition goal %q", goal)
	}
	if !units.Valid() {
		return nil, fmt.Errorf("invalid unit system %q", units)
	}
	if name == "" {
		name = "New User"
	}

	return &Profile{
		ID:             id,
		Name:           name,
		Age:            age,
		Weight:         weightKg,
		Height:         heightCm,
		Gender:         gender,
		ActivityLevel:  activity,
		NutritionGoal:  goal,
		PreferredUnits: units,
	}, nil
}

// DefaultProfile is the onboarding profile created when no stored profile
// exists for the client yet.
func DefaultProfile(id uuid.UUID) *Profile {
	return &Profile{
		ID:             id,
		Name:           "New User",
		Age:            30,
		Weight:         70,
		Height:         170,
		Gender:         GenderMale,
		ActivityLevel:  ActivityModeratelyActive,
		NutritionGoal:  GoalMaintenance,
		PreferredUnits: UnitsImperial,
	}
}

func (p *Profile) SetName(name string) {
	if name == "" {
		name = "New User"
	}
	p.Name = name
}

func (p *Profile) SetAge(age int) error {
	if age <= 0 {
		return ErrInvalidAge
	}
	p.Age = age
	return nil
}

func (p *Profile) SetWeight(kg float64) error {
	if kg <= 0 {
		return ErrInvalidWeight
	}
	p.Weight = kg
	return nil
}

func (p *Profile) SetHeight(cm float64) error {
	if cm <= 0 {
		return ErrInvalidHeight
	}
	p.Height = cm
	return nil
}

func (p *Profile) SetGender(g Gender) error {
	if !g.Valid() {
		return fmt.Errorf("invalid gender %q", g)
	}
	p.Gender = g
	return nil
}

func (p *Profile) SetActivityLevel(a ActivityLevel) error {
	if !a.Valid() {
		return fmt.Errorf("invalid activity level %q", a)
	}
	p.ActivityLevel = a
	return nil
}

func (p *Profile) SetNutritionGoal(g NutritionGoal) error {
	if !g.Valid() {
		return fmt.Errorf("invalid nutrition goal %q", g)
	}
	p.NutritionGoal = g
	return nil
}

func (p *Profile) SetPreferredUnits(u UnitSystem) error {
	if !u.Valid() {
		return fmt.Errorf("invalid unit system %q", u)
	}
	p.PreferredUnits = u
	return nil
}

// Imperial accessors convert on the fly; canonical storage stays metric.

func (p *Profile) WeightPounds() float64 {
	return utils.KilogramsToPounds(p.Weight)
}

func (p *Profile) SetWeightPounds(lbs float64) error {
	return p.SetWeight(utils.PoundsToKilograms(lbs))
}

func (p *Profile) HeightFeetInches() (feet, inches int) {
	return utils.CentimetersToFeetInches(p.Height)
}

func (p *Profile) SetHeightFeetInches(feet, inches int) error {
	return p.SetHeight(utils.FeetInchesToCentimeters(feet, inches))
}

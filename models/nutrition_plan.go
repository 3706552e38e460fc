package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Macronutrient keys as they appear on the wire.
const (
	MacroProtein = "protein"
	MacroCarbs   = "carbs"
	MacroFats    = "fats"
)

// kcal per gram of each macronutrient
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramFats    = 9
)

// MealSuggestion is one meal slot ("Breakfast", "Lunch", ...) with the
// AI-suggested dishes for it.
type MealSuggestion struct {
	ID          uuid.UUID `json:"id"`
	Meal        string    `json:"meal"`
	Suggestions []string  `json:"suggestions"`
}

type MealCategory string

const (
	MealBreakfast MealCategory = "Breakfast"
	MealLunch     MealCategory = "Lunch"
	MealDinner    MealCategory = "Dinner"
	MealSnacks    MealCategory = "Snacks"
	MealOther     MealCategory = "Other"
)

func (m MealSuggestion) Category() MealCategory {
	switch strings.ToLower(m.Meal) {
	case "breakfast":
		return MealBreakfast
	case "lunch":
		return MealLunch
	case "dinner":
		return MealDinner
	case "snacks":
		return MealSnacks
	default:
		return MealOther
	}
}

// NutritionPlan is only ever constructed from validated AI output, never from
// user input. Its numeric fields are fixed after creation; the recommendation
// list may grow via a later enrichment pass. JSON field names are part of the
// store's wire contract.
type NutritionPlan struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	DailyCalories   int              `json:"daily_calories"`
	Macronutrients  map[string]int   `json:"macronutrients"`
	MealSuggestions []MealSuggestion `json:"meal_suggestions"`
	Recommendations []string         `json:"recommendations"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (p *NutritionPlan) Protein() int { return p.Macronutrients[MacroProtein] }
func (p *NutritionPlan) Carbs() int   { return p.Macronutrients[MacroCarbs] }
func (p *NutritionPlan) Fats() int    { return p.Macronutrients[MacroFats] }

// CalculatedCalories recomputes the daily total from the macros. It is
// informational and may diverge from DailyCalories, which is what the model
// asserted and what validation gates on.
func (p *NutritionPlan) CalculatedCalories() int {
	return p.Protein()*CaloriesPerGramProtein +
		p.Carbs()*CaloriesPerGramCarbs +
		p.Fats()*CaloriesPerGramFats
}

func (p *NutritionPlan) ProteinPercentage() float64 {
	return p.macroPercentage(p.Protein() * CaloriesPerGramProtein)
}

func (p *NutritionPlan) CarbsPercentage() float64 {
	return p.macroPercentage(p.Carbs() * CaloriesPerGramCarbs)
}

func (p *NutritionPlan) FatsPercentage() float64 {
	return p.macroPercentage(p.Fats() * CaloriesPerGramFats)
}

func (p *NutritionPlan) macroPercentage(calories int) float64 {
	if p.DailyCalories <= 0 {
		return 0
	}
	return float64(calories) / float64(p.DailyCalories) * 100
}

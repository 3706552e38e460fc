package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *NutritionPlan {
	return &NutritionPlan{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		DailyCalories: 2200,
		Macronutrients: map[string]int{
			MacroProtein: 150,
			MacroCarbs:   250,
			MacroFats:    70,
		},
		MealSuggestions: []MealSuggestion{
			{ID: uuid.New(), Meal: "Breakfast", Suggestions: []string{"Oatmeal"}},
		},
		Recommendations: []string{"Drink water"},
		CreatedAt:       time.Now(),
	}
}

func TestMacroAccessors(t *testing.T) {
	plan := samplePlan()
	assert.Equal(t, 150, plan.Protein())
	assert.Equal(t, 250, plan.Carbs())
	assert.Equal(t, 70, plan.Fats())

	empty := &NutritionPlan{}
	assert.Zero(t, empty.Protein())
	assert.Zero(t, empty.Carbs())
	assert.Zero(t, empty.Fats())
}

func TestCalculatedCalories(t *testing.T) {
	plan := samplePlan()
	// 150*4 + 250*4 + 70*9
	assert.Equal(t, 2230, plan.CalculatedCalories())
}

func TestMacroPercentages(t *testing.T) {
	plan := samplePlan()

	assert.InDelta(t, 27.27, plan.ProteinPercentage(), 0.01)
	assert.InDelta(t, 45.45, plan.CarbsPercentage(), 0.01)
	assert.InDelta(t, 28.64, plan.FatsPercentage(), 0.01)
}

func TestMacroPercentagesZeroCalories(t *testing.T) {
	plan := samplePlan()
	plan.DailyCalories = 0

	assert.Zero(t, plan.ProteinPercentage())
	assert.Zero(t, plan.CarbsPercentage())
	assert.Zero(t, plan.FatsPercentage())
}

func TestMealCategory(t *testing.T) {
	cases := map[string]MealCategory{
		"Breakfast": MealBreakfast,
		"breakfast": MealBreakfast,
		"Lunch":     MealLunch,
		"Dinner":    MealDinner,
		"Snacks":    MealSnacks,
		"Brunch":    MealOther,
	}
	for name, want := range cases {
		m := MealSuggestion{Meal: name}
		assert.Equal(t, want, m.Category(), "meal %q", name)
	}
}

func TestPlanWireFieldNames(t *testing.T) {
	b, err := json.Marshal(samplePlan())
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	for _, key := range []string{"id", "user_id", "daily_calories", "macronutrients",
		"meal_suggestions", "recommendations", "created_at"} {
		assert.Contains(t, wire, key)
	}

	meals := wire["meal_suggestions"].([]any)
	meal := meals[0].(map[string]any)
	assert.Contains(t, meal, "meal")
	assert.Contains(t, meal, "suggestions")
}

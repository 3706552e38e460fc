package services

import (
	"fmt"

	"github.com/eligrinfeld/shteyn-nutrition/models"
)

// planPromptTemplate pins the JSON shape the normalizer expects. The schema
// block is a soft contract only; nothing the model returns is trusted until
// it has been through Normalize.
const planPromptTemplate = `As a nutrition expert, create a detailed nutrition plan in JSON format for a person with these characteristics:
- Age: %d
- Gender: %s
- Weight: %s
- Height: %s
- Activity Level: %s
- Goal: %s

Return the response in this exact JSON format:
{
    "daily_calories": number,
    "macronutrients": {
        "protein": number (in grams),
        "carbs": number (in grams),
        "fats": number (in grams)
    },
    "meal_suggestions": [
        {
            "meal": "Breakfast",
            "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
        },
        {
            "meal": "Lunch",
            "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
        },
        {
            "meal": "Dinner",
            "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
        },
        {
            "meal": "Snacks",
            "suggestions": ["suggestion1", "suggestion2"]
        }
    ],
    "recommendations": [
        "recommendation1",
        "recommendation2",
        "recommendation3"
    ]
}

Base the calculations on the person's characteristics and these factors:
1. BMR (Basal Metabolic Rate)
2. Activity level multiplier
3. Goal-specific adjustment
4. Protein needs based on weight and activity
5. Balanced macro distribution for the specific goal`

const recommendationPromptTemplate = `Analyze this nutrition plan and provide personalized recommendations for:
- Age: %d
- Weight: %s
- Height: %s
- Goal: %s

Current plan:
- Daily calories: %d
- Protein: %dg
- Carbs: %dg
- Fats: %dg

Provide specific recommendations for improving the plan and achieving the user's goals.`

// BuildPlanPrompt is a pure function of the profile; the same profile always
// produces the same prompt.
func BuildPlanPrompt(p *models.Profile) string {
	return fmt.Sprintf(planPromptTemplate,
		p.Age,
		p.Gender,
		displayWeight(p),
		displayHeight(p),
		p.ActivityLevel,
		p.NutritionGoal,
	)
}

// BuildRecommendationPrompt references the existing plan's numeric fields so
// the second pass can critique rather than regenerate.
func BuildRecommendationPrompt(p *models.Profile, plan *models.NutritionPlan) string {
	return fmt.Sprintf(recommendationPromptTemplate,
		p.Age,
		displayWeight(p),
		displayHeight(p),
		p.NutritionGoal,
		plan.DailyCalories,
		plan.Protein(),
		plan.Carbs(),
		plan.Fats(),
	)
}

func displayWeight(p *models.Profile) string {
	if p.PreferredUnits == models.UnitsImperial {
		return fmt.Sprintf("%d lbs", int(p.WeightPounds()))
	}
	return fmt.Sprintf("%d kg", int(p.Weight))
}

func displayHeight(p *models.Profile) string {
	if p.PreferredUnits == models.UnitsImperial {
		feet, inches := p.HeightFeetInches()
		return fmt.Sprintf("%d'%d\"", feet, inches)
	}
	return fmt.Sprintf("%d cm", int(p.Height))
}

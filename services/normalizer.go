package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eligrinfeld/shteyn-nutrition/models"
)

// Domain-valid ranges for the plan's numeric fields.
const (
	MinDailyCalories = 1200
	MaxDailyCalories = 5000
	MaxMacroGrams    = 1000 // exclusive; each macro must be in (0, 1000)
)

// requiredMeals must all be present (exact case, as the schema emits them)
// among the surviving meal suggestions.
var requiredMeals = []string{"Breakfast", "Lunch", "Dinner"}

const minMealCount = 3

// MealPolicy controls how strictly individual meal entries are validated.
// Historically the app shipped both behaviors, so the choice is explicit
// rather than baked in.
type MealPolicy int

const (
	// MealPolicyDropInvalid silently drops malformed meal entries as long as
	// the required meals survive.
	MealPolicyDropInvalid MealPolicy = iota
	// MealPolicyStrict rejects the whole response when any meal entry is
	// malformed.
	MealPolicyStrict
)

// Normalizer converts the model's untrusted free-form output into a
// NutritionPlan, or fails with a typed error. Validation is layered from
// cheapest to most expensive: text cleanup, JSON parse, field presence,
// numeric ranges, then cross-field meal completeness. Either every stage
// passes and a complete plan comes out, or nothing does.
type Normalizer struct {
	policy MealPolicy
	logger *zap.Logger
}

func NewNormalizer(policy MealPolicy, logger *zap.Logger) *Normalizer {
	return &Normalizer{policy: policy, logger: logger.Named("normalizer")}
}

// stripFences removes a markdown code-fence wrapper the model sometimes adds
// around its JSON. Idempotent: stripping already-stripped text is a no-op.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// Normalize validates raw model output and assembles a plan owned by userID.
// The input is decoded generically first and mapped field by field; it is
// never unmarshaled directly into the domain type.
func (n *Normalizer) Normalize(raw string, userID uuid.UUID) (*models.NutritionPlan, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		n.logger.Warn("model response is not a JSON object",
			zap.String("fragment", preview(text)), zap.Error(err))
		return nil, &MalformedJSONError{Detail: err.Error()}
	}
	if root == nil {
		return nil, &MalformedJSONError{Detail: "top-level value is null"}
	}
	// Decode stops at the end of the first value; trailing prose after the
	// object ("Hope this helps!") means the text as a whole is not JSON.
	if dec.More() {
		n.logger.Warn("model response has trailing data after the JSON object",
			zap.String("fragment", preview(text)))
		return nil, &MalformedJSONError{Detail: "trailing data after top-level object"}
	}

	calories, ok := intField(root, "daily_calories")
	if !ok {
		return nil, &MissingFieldError{Field: "daily_calories"}
	}
	macrosRaw, ok := root["macronutrients"].(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: "macronutrients"}
	}
	mealsRaw, ok := root["meal_suggestions"].([]any)
	if !ok {
		return nil, &MissingFieldError{Field: "meal_suggestions"}
	}
	recommendations, ok := stringSlice(root["recommendations"])
	if !ok {
		return nil, &MissingFieldError{Field: "recommendations"}
	}

	macros, err := n.validateMacros(macrosRaw)
	if err != nil {
		return nil, err
	}

	if calories < MinDailyCalories || calories > MaxDailyCalories {
		return nil, &InvalidCalorieRangeError{Value: calories}
	}

	meals, err := n.validateMeals(mealsRaw)
	if err != nil {
		return nil, err
	}

	return &models.NutritionPlan{
		ID:              uuid.New(),
		UserID:          userID,
		DailyCalories:   calories,
		Macronutrients:  macros,
		MealSuggestions: meals,
		Recommendations: recommendations,
		CreatedAt:       time.Now(),
	}, nil
}

func (n *Normalizer) validateMacros(raw map[string]any) (map[string]int, error) {
	macros := make(map[string]int, 3)
	for _, key := range []string{models.MacroProtein, models.MacroCarbs, models.MacroFats} {
		v, ok := intField(raw, key)
		if !ok {
			return nil, &InvalidMacronutrientsError{Detail: fmt.Sprintf("missing or non-integer %q", key)}
		}
		if v <= 0 || v >= MaxMacroGrams {
			return nil, &InvalidMacronutrientsError{Detail: fmt.Sprintf("%s=%dg outside (0, %d)", key, v, MaxMacroGrams)}
		}
		macros[key] = v
	}
	return macros, nil
}

// validateMeals keeps well-formed entries in input order. Under
// MealPolicyDropInvalid a malformed entry is dropped; under MealPolicyStrict
// it fails the whole response. Either way the survivors must still cover the
// required meals.
func (n *Normalizer) validateMeals(raw []any) ([]models.MealSuggestion, error) {
	meals := make([]models.MealSuggestion, 0, len(raw))
	for i, entry := range raw {
		meal, ok := parseMeal(entry)
		if !ok {
			if n.policy == MealPolicyStrict {
				return nil, &InvalidMealSuggestionError{Detail: fmt.Sprintf("entry %d is malformed", i)}
			}
			n.logger.Warn("dropping malformed meal entry", zap.Int("index", i))
			continue
		}
		meals = append(meals, meal)
	}

	if len(meals) < minMealCount {
		return nil, ErrMissingRequiredMeals
	}
	for _, required := range requiredMeals {
		found := false
		for _, m := range meals {
			if m.Meal == required {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrMissingRequiredMeals
		}
	}
	return meals, nil
}

func parseMeal(entry any) (models.MealSuggestion, bool) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return models.MealSuggestion{}, false
	}
	name, ok := obj["meal"].(string)
	if !ok || name == "" {
		return models.MealSuggestion{}, false
	}
	suggestions, ok := stringSlice(obj["suggestions"])
	if !ok || len(suggestions) == 0 {
		return models.MealSuggestion{}, false
	}
	for _, s := range suggestions {
		if s == "" {
			return models.MealSuggestion{}, false
		}
	}
	return models.MealSuggestion{
		ID:          uuid.New(),
		Meal:        name,
		Suggestions: suggestions,
	}, true
}

// intField reads an integer JSON number. Fractional values do not pass.
func intField(m map[string]any, key string) (int, bool) {
	num, ok := m[key].(json.Number)
	if !ok {
		return 0, false
	}
	v, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

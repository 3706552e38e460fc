package services

import (
	"errors"
	"fmt"
)

// Every failure in the plan pipeline is one of the errors below. They are
// terminal for the current operation; nothing retries internally and nothing
// is persisted when normalization fails.

var (
	// ErrEmptyCompletion means the model endpoint answered 200 but returned
	// no choices (or an empty message).
	ErrEmptyCompletion = errors.New("completion returned no content")

	// ErrEmptyResponse means the completion text was empty after stripping
	// code-fence markers.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrMissingRequiredMeals means that after dropping malformed entries the
	// meal suggestions no longer cover Breakfast, Lunch and Dinner.
	ErrMissingRequiredMeals = errors.New("meal suggestions missing required meals")

	// ErrProfileNotFound is returned by the store when a profile id has no
	// record (the store signals this with an empty result array).
	ErrProfileNotFound = errors.New("profile not found")
)

// TransportError wraps a network-level failure talking to an external
// collaborator (model endpoint or store).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is a non-success HTTP status from an external collaborator.
// Body carries a truncated copy of the response for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.Status, e.Body)
}

// MalformedJSONError means the model's output was not valid JSON, or did not
// parse to an object at the top level.
type MalformedJSONError struct {
	Detail string
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model response: %s", e.Detail)
}

// MissingFieldError names a required top-level field that is absent or has
// the wrong type.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing or invalid field %q in model response", e.Field)
}

// InvalidMacronutrientsError covers missing, non-integer or out-of-range
// macronutrient values.
type InvalidMacronutrientsError struct {
	Detail string
}

func (e *InvalidMacronutrientsError) Error() string {
	return fmt.Sprintf("invalid macronutrients: %s", e.Detail)
}

// InvalidCalorieRangeError carries the offending daily calorie value.
type InvalidCalorieRangeError struct {
	Value int
}

func (e *InvalidCalorieRangeError) Error() string {
	return fmt.Sprintf("daily calories %d outside accepted range [%d, %d]", e.Value, MinDailyCalories, MaxDailyCalories)
}

// InvalidMealSuggestionError is produced under the strict meal policy when a
// single malformed entry rejects the whole response.
type InvalidMealSuggestionError struct {
	Detail string
}

func (e *InvalidMealSuggestionError) Error() string {
	return fmt.Sprintf("invalid meal suggestion: %s", e.Detail)
}

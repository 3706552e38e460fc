package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eligrinfeld/shteyn-nutrition/middlewares"
	"github.com/eligrinfeld/shteyn-nutrition/services"
)

// currentProfileID reads the profile id the auth middleware resolved.
func currentProfileID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middlewares.ProfileIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// statusForError maps the pipeline's typed errors onto HTTP statuses: the
// model misbehaving is a bad gateway, its output failing validation is an
// unprocessable entity, and a missing profile is a plain 404.
func statusForError(err error) int {
	var (
		transportErr *services.TransportError
		upstreamErr  *services.UpstreamError
		malformedErr *services.MalformedJSONError
		missingErr   *services.MissingFieldError
		macroErr     *services.InvalidMacronutrientsError
		calorieErr   *services.InvalidCalorieRangeError
		mealErr      *services.InvalidMealSuggestionError
	)

	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.As(err, &transportErr),
		errors.As(err, &upstreamErr),
		errors.Is(err, services.ErrEmptyCompletion):
		return http.StatusBadGateway
	case errors.As(err, &malformedErr),
		errors.As(err, &missingErr),
		errors.As(err, &macroErr),
		errors.As(err, &calorieErr),
		errors.As(err, &mealErr),
		errors.Is(err, services.ErrEmptyResponse),
		errors.Is(err, services.ErrMissingRequiredMeals):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

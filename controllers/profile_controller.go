package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligrinfeld/shteyn-nutrition/models"
	"github.com/eligrinfeld/shteyn-nutrition/services"
	"github.com/eligrinfeld/shteyn-nutrition/utils"
)

type ProfileController struct {
	store services.PlanStore
}

func NewProfileController(store services.PlanStore) *ProfileController {
	return &ProfileController{store: store}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	id, ok := currentProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no profile in context"})
		return
	}

	profile, err := pc.store.FetchProfile(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ProfileInput uses zero values to mean "unchanged"; only supplied fields are
// applied, each through its validating setter.
type ProfileInput struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Weight         float64 `json:"weight"` // kilograms
	Height         float64 `json:"height"` // centimeters
	Gender         string  `json:"gender"`
	ActivityLevel  string  `json:"activity_level"`
	NutritionGoal  string  `json:"nutrition_goal"`
	PreferredUnits string  `json:"preferred_units"`
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	id, ok := currentProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no profile in context"})
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.store.FetchProfile(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := applyProfileInput(profile, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.store.SaveProfile(c.Request.Context(), profile); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func applyProfileInput(profile *models.Profile, input ProfileInput) error {
	if input.Name != "" {
		profile.SetName(input.Name)
	}
	if input.Age != 0 {
		if err := profile.SetAge(input.Age); err != nil {
			return err
		}
	}
	if input.Weight != 0 {
		if err := profile.SetWeight(input.Weight); err != nil {
			return err
		}
	}
	if input.Height != 0 {
		if err := profile.SetHeight(input.Height); err != nil {
			return err
		}
	}
	if input.Gender != "" {
		if err := profile.SetGender(models.Gender(input.Gender)); err != nil {
			return err
		}
	}
	if input.ActivityLevel != "" {
		if err := profile.SetActivityLevel(models.ActivityLevel(input.ActivityLevel)); err != nil {
			return err
		}
	}
	if input.NutritionGoal != "" {
		if err := profile.SetNutritionGoal(models.NutritionGoal(input.NutritionGoal)); err != nil {
			return err
		}
	}
	if input.PreferredUnits != "" {
		if err := profile.SetPreferredUnits(models.UnitSystem(input.PreferredUnits)); err != nil {
			return err
		}
	}
	return nil
}

// GetMetrics returns derived body metrics for the profile screen.
func (pc *ProfileController) GetMetrics(c *gin.Context) {
	id, ok := currentProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no profile in context"})
		return
	}

	profile, err := pc.store.FetchProfile(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	bmi, err := utils.CalculateBMI(profile.Height, profile.Weight)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	bmr := utils.CalculateBMR(profile.Weight, profile.Height, profile.Age, string(profile.Gender))

	c.JSON(http.StatusOK, gin.H{
		"bmi":          bmi,
		"bmi_category": utils.BMICategory(bmi),
		"bmr":          bmr,
	})
}

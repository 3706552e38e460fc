package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligrinfeld/shteyn-nutrition/models"
	"github.com/eligrinfeld/shteyn-nutrition/services"
)

type PlanController struct {
	store services.PlanStore
	plans *services.PlanService
}

func NewPlanController(store services.PlanStore, plans *services.PlanService) *PlanController {
	return &PlanController{store: store, plans: plans}
}

// GeneratePlan runs the full pipeline for the authenticated profile. On any
// failure nothing was persisted, so the client's current plan is still valid.
func (pc *PlanController) GeneratePlan(c *gin.Context) {
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

	plan, err := pc.plans.GeneratePlan(c.Request.Context(), profile)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (pc *PlanController) ListPlans(c *gin.Context) {
	id, ok := currentProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no profile in context"})
		return
	}

	plans, err := pc.plans.History(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// RefreshRecommendations appends a second-pass free-text recommendation to
// the plan the client currently holds.
func (pc *PlanController) RefreshRecommendations(c *gin.Context) {
	id, ok := currentProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no profile in context"})
		return
	}

	var plan models.NutritionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if plan.UserID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "plan belongs to another profile"})
		return
	}

	profile, err := pc.store.FetchProfile(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	updated, err := pc.plans.RefreshRecommendations(c.Request.Context(), profile, &plan)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

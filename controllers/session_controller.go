package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eligrinfeld/shteyn-nutrition/services"
	"github.com/eligrinfeld/shteyn-nutrition/utils"
)

type SessionController struct {
	store     services.PlanStore
	jwtSecret string
}

func NewSessionController(store services.PlanStore, jwtSecret string) *SessionController {
	return &SessionController{store: store, jwtSecret: jwtSecret}
}

type sessionInput struct {
	ProfileID string `json:"profile_id"`
}

// CreateSession hands the mobile client a token for its profile. A client
// with no stored profile id sends an empty body and gets a fresh default
// profile; a returning client sends the id it kept and gets its record back.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var input sessionInput
	_ = c.ShouldBindJSON(&input) // body is optional

	profileID := uuid.New()
	if input.ProfileID != "" {
		parsed, err := uuid.Parse(input.ProfileID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile_id"})
			return
		}
		profileID = parsed
	}

	profile, err := sc.store.EnsureProfile(c.Request.Context(), profileID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := utils.GenerateJWT(sc.jwtSecret, profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

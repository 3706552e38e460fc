package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eligrinfeld/shteyn-nutrition/controllers"
	"github.com/eligrinfeld/shteyn-nutrition/middlewares"
)

func SetupRouter(
	jwtSecret string,
	session *controllers.SessionController,
	profile *controllers.ProfileController,
	plan *controllers.PlanController,
) *gin.Engine {
	r := gin.Default()

	// Public session bootstrap
	auth := r.Group("/auth")
	{
		auth.POST("/session", session.CreateSession)
	}

	// Everything else requires the session token
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.GET("/profile", profile.GetProfile)
		api.PUT("/profile", profile.UpdateProfile)
		api.GET("/profile/metrics", profile.GetMetrics)

		api.POST("/plans", plan.GeneratePlan)
		api.GET("/plans", plan.ListPlans)
		api.POST("/plans/refresh", plan.RefreshRecommendations)
	}

	return r
}

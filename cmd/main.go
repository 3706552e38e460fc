package main

import (
	"log"
	"net/http"
	"time"

	"github.com/eligrinfeld/shteyn-nutrition/config"
	"github.com/eligrinfeld/shteyn-nutrition/controllers"
	"github.com/eligrinfeld/shteyn-nutrition/routes"
	"github.com/eligrinfeld/shteyn-nutrition/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	httpClient := &http.Client{Timeout: 15 * time.Second}

	store := services.NewStoreService(cfg.SupabaseURL, cfg.SupabaseAnonKey, httpClient, logger)
	completions := services.NewCompletionService(cfg.DeepSeekBaseURL, cfg.DeepSeekAPIKey, cfg.DeepSeekModel, httpClient, logger)
	normalizer := services.NewNormalizer(services.MealPolicyDropInvalid, logger)
	plans := services.NewPlanService(completions, store, normalizer, logger)

	r := routes.SetupRouter(
		cfg.JWTSecret,
		controllers.NewSessionController(store, cfg.JWTSecret),
		controllers.NewProfileController(store),
		controllers.NewPlanController(store, plans),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

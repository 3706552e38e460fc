package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eligrinfeld/shteyn-nutrition/models"
)

// PlanService sequences prompt -> completion -> normalize -> persist. All
// collaborators are injected; nothing here is a singleton. Failures surface
// to the caller unmodified and nothing is persisted on a failed generation,
// so the caller's previous plan (if any) stays intact.
type PlanService struct {
	completions CompletionClient
	store       PlanStore
	normalizer  *Normalizer
	logger      *zap.Logger
}

func NewPlanService(completions CompletionClient, store PlanStore, normalizer *Normalizer, logger *zap.Logger) *PlanService {
	return &PlanService{
		completions: completions,
		store:       store,
		normalizer:  normalizer,
		logger:      logger.Named("plans"),
	}
}

// GeneratePlan produces, validates and persists a fresh plan for the profile.
func (s *PlanService) GeneratePlan(ctx context.Context, profile *models.Profile) (*models.NutritionPlan, error) {
	prompt := BuildPlanPrompt(profile)

	raw, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := s.normalizer.Normalize(raw, profile.ID)
	if err != nil {
		s.logger.Warn("plan normalization failed",
			zap.String("profile_id", profile.ID.String()),
			zap.String("raw", preview(raw)),
			zap.Error(err))
		return nil, err
	}

	if err := s.store.SavePlan(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("plan generated",
		zap.String("profile_id", profile.ID.String()),
		zap.String("plan_id", plan.ID.String()),
		zap.Int("daily_calories", plan.DailyCalories))
	return plan, nil
}

// RefreshRecommendations runs the second-pass prompt against the existing
// plan and appends the completion as one free-text recommendation. This path
// deliberately does not go through the normalizer: the output is prose, not
// JSON. The caller's plan is not mutated; the updated copy is persisted whole
// and returned.
func (s *PlanService) RefreshRecommendations(ctx context.Context, profile *models.Profile, plan *models.NutritionPlan) (*models.NutritionPlan, error) {
	prompt := BuildRecommendationPrompt(profile, plan)

	raw, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	// The model sometimes wraps even prose in code fences; strip them so the
	// stored recommendation reads as plain text.
	text := stripFences(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	updated := *plan
	updated.Recommendations = make([]string, 0, len(plan.Recommendations)+1)
	updated.Recommendations = append(updated.Recommendations, plan.Recommendations...)
	updated.Recommendations = append(updated.Recommendations, text)

	if err := s.store.SavePlan(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("recommendations refreshed",
		zap.String("plan_id", updated.ID.String()),
		zap.Int("recommendations", len(updated.Recommendations)))
	return &updated, nil
}

// History returns the profile's persisted plans.
func (s *PlanService) History(ctx context.Context, profileID uuid.UUID) ([]models.NutritionPlan, error) {
	return s.store.FetchPlans(ctx, profileID)
}

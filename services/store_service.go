package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eligrinfeld/shteyn-nutrition/models"
)

// PlanStore is the remote persistence collaborator. Profiles and plans live
// in a Supabase-style REST store; this service only knows the handful of
// fields it reads and writes.
type PlanStore interface {
	SaveProfile(ctx context.Context, profile *models.Profile) error
	FetchProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	EnsureProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	SavePlan(ctx context.Context, plan *models.NutritionPlan) error
	FetchPlans(ctx context.Context, userID uuid.UUID) ([]models.NutritionPlan, error)
}

type StoreService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

func NewStoreService(baseURL, apiKey string, client *http.Client, logger *zap.Logger) *StoreService {
	return &StoreService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger.Named("store"),
	}
}

func (s *StoreService) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/rest/v1/"+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create store request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// SaveProfile upserts the profile record keyed by its id.
func (s *StoreService) SaveProfile(ctx context.Context, profile *models.Profile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, "profiles", b)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Warn("profile save rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", preview(string(body))))
		return &UpstreamError{Status: resp.StatusCode, Body: preview(string(body))}
	}
	return nil
}

func (s *StoreService) FetchProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "profiles?id=eq."+id.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: preview(string(body))}
	}

	var profiles []models.Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("decode profile records: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}
	return &profiles[0], nil
}

// EnsureProfile fetches the profile, creating and persisting the default
// onboarding profile when none exists yet.
func (s *StoreService) EnsureProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.FetchProfile(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	profile = models.DefaultProfile(id)
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("created default profile", zap.String("profile_id", id.String()))
	return profile, nil
}

// SavePlan inserts a plan record; the store answers 201 on success.
func (s *StoreService) SavePlan(ctx context.Context, plan *models.NutritionPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, "nutrition_plans", b)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Warn("plan save rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", preview(string(body))))
		return &UpstreamError{Status: resp.StatusCode, Body: preview(string(body))}
	}
	return nil
}

func (s *StoreService) FetchPlans(ctx context.Context, userID uuid.UUID) ([]models.NutritionPlan, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "nutrition_plans?user_id=eq."+userID.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: preview(string(body))}
	}

	var plans []models.NutritionPlan
	if err := json.Unmarshal(body, &plans); err != nil {
		return nil, fmt.Errorf("decode plan records: %w", err)
	}
	return plans, nil
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eligrinfeld/shteyn-nutrition/models"
)

func newStoreServer(t *testing.T, handler http.HandlerFunc) *StoreService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStoreService(srv.URL, "anon-key", srv.Client(), zap.NewNop())
}

func TestFetchProfileFound(t *testing.T) {
	id := uuid.New()
	stored := models.DefaultProfile(id)

	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq."+id.String(), r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		json.NewEncoder(w).Encode([]*models.Profile{stored})
	})

	profile, err := svc.FetchProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, "New User", profile.Name)
	assert.Equal(t, models.UnitsImperial, profile.PreferredUnits)
}

func TestFetchProfileNotFound(t *testing.T) {
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	_, err := svc.FetchProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFetchProfileUpstreamError(t *testing.T) {
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	})

	_, err := svc.FetchProfile(context.Background(), uuid.New())
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
}

func TestSaveProfileUpserts(t *testing.T) {
	var prefer string
	var saved models.Profile
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		prefer = r.Header.Get("Prefer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		w.WriteHeader(http.StatusCreated)
	})

	profile := models.DefaultProfile(uuid.New())
	require.NoError(t, svc.SaveProfile(context.Background(), profile))
	assert.Equal(t, "resolution=merge-duplicates", prefer)
	assert.Equal(t, profile.ID, saved.ID)
}

func TestEnsureProfileCreatesDefault(t *testing.T) {
	id := uuid.New()
	var requests []string
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte("[]"))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		}
	})

	profile, err := svc.EnsureProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, 70.0, profile.Weight)
	assert.Equal(t, 170.0, profile.Height)
	assert.Equal(t, models.GoalMaintenance, profile.NutritionGoal)
	assert.Equal(t, []string{"GET /rest/v1/profiles", "POST /rest/v1/profiles"}, requests)
}

func TestEnsureProfileReturnsExisting(t *testing.T) {
	id := uuid.New()
	stored := models.DefaultProfile(id)
	stored.Name = "Returning User"

	var posts int
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		json.NewEncoder(w).Encode([]*models.Profile{stored})
	})

	profile, err := svc.EnsureProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Returning User", profile.Name)
	assert.Zero(t, posts, "existing profile must not be re-created")
}

func TestSavePlanRequiresCreated(t *testing.T) {
	plan := &models.NutritionPlan{ID: uuid.New(), UserID: uuid.New(), DailyCalories: 2200}

	ok := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/nutrition_plans", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})
	require.NoError(t, ok.SavePlan(context.Background(), plan))

	rejecting := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"missing column"}`))
	})
	err := rejecting.SavePlan(context.Background(), plan)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
}

func TestFetchPlans(t *testing.T) {
	userID := uuid.New()
	svc := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/nutrition_plans", r.URL.Path)
		assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("user_id"))
		json.NewEncoder(w).Encode([]*models.NutritionPlan{
			{ID: uuid.New(), UserID: userID, DailyCalories: 2200},
			{ID: uuid.New(), UserID: userID, DailyCalories: 1800},
		})
	})

	plans, err := svc.FetchPlans(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 2200, plans[0].DailyCalories)
	assert.Equal(t, 1800, plans[1].DailyCalories)
}

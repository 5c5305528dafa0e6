package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// testRouter wires the onboarding and profile handlers over a shared memory
// store, with the auth middleware replaced by a fixed installation ID.
func testRouter(store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("installationID", "test-installation")
		c.Next()
	})

	onboardingHandler := NewOnboardingHandler(store)
	profileHandler := NewProfileHandler(store)
	router.GET("/onboarding/screen", onboardingHandler.GetScreen)
	router.GET("/onboarding/state", onboardingHandler.GetState)
	router.POST("/onboarding/complete", onboardingHandler.Complete)
	router.PATCH("/profile", profileHandler.PatchProfile)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.ResponseData) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp utils.ResponseData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetScreenWalksTheFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	stores.NewProfileStore(store, "test-installation").SetServiceAreas(
		[]models.ServiceArea{models.AreaHousing, models.AreaHealthcare},
	)
	router := testRouter(store)

	w, resp := doJSON(t, router, http.MethodGet, "/onboarding/screen?step=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(9), data["totalSteps"])
	assert.Equal(t, "welcome", data["screen"].(map[string]any)["kind"])

	// First domain question pair belongs to healthcare, the lexicographically
	// smaller of the two selected areas.
	_, resp = doJSON(t, router, http.MethodGet, "/onboarding/screen?step=3", "")
	screen := resp.Data.(map[string]any)["screen"].(map[string]any)
	assert.Equal(t, "domain_questions", screen["kind"])
	assert.Equal(t, "healthcare", screen["area"])
	assert.Equal(t, float64(1), screen["questionSet"])
}

func TestGetScreenClampsOutOfRangeSteps(t *testing.T) {
	router := testRouter(storage.NewMemoryStore())

	for _, step := range []string{"-5", "99"} {
		w, resp := doJSON(t, router, http.MethodGet, "/onboarding/screen?step="+step, "")
		require.Equal(t, http.StatusOK, w.Code, "step %s", step)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "completion", data["screen"].(map[string]any)["kind"])
		assert.Equal(t, true, data["terminal"])
	}
}

func TestGetScreenRejectsNonIntegerStep(t *testing.T) {
	router := testRouter(storage.NewMemoryStore())
	w, _ := doJSON(t, router, http.MethodGet, "/onboarding/screen?step=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteFlipsFlagAndReturnsSummary(t *testing.T) {
	store := storage.NewMemoryStore()
	ps := stores.NewProfileStore(store, "test-installation")
	ps.Update(func(p *models.Profile) {
		p.ServiceAreas = []models.ServiceArea{models.AreaHealthcare}
		p.InsuranceStatus = models.InsuranceNone
	})
	router := testRouter(store)

	w, resp := doJSON(t, router, http.MethodPost, "/onboarding/complete", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, ps.Get().OnboardingCompleted)
	recs := resp.Data.(map[string]any)["recommendations"].(map[string]any)
	assert.Contains(t, recs, "healthcare")
}

func TestPatchProfileDrivesSequencerState(t *testing.T) {
	store := storage.NewMemoryStore()
	router := testRouter(store)

	w, _ := doJSON(t, router, http.MethodPatch, "/profile", `{"serviceAreas":["housing"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	_, resp := doJSON(t, router, http.MethodGet, "/onboarding/state", "")
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(7), data["totalSteps"])
}

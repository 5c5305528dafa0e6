package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/onboarding"
	"github.com/sanashahul/GamiSMS-sub000/internal/recommend"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// OnboardingHandler resolves onboarding screens for the client. The step
// counter lives with the client; the server only maps it to a screen against
// the current profile, so going back and forward stay symmetric.
type OnboardingHandler struct {
	Store storage.Store
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(store storage.Store) *OnboardingHandler {
	return &OnboardingHandler{Store: store}
}

func (h *OnboardingHandler) profiles(c *gin.Context) (*stores.ProfileStore, bool) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return nil, false
	}
	return stores.NewProfileStore(h.Store, id), true
}

// GetScreen handles GET /onboarding/screen?step=N. Out-of-range steps,
// negative included, resolve to the completion screen rather than erroring.
func (h *OnboardingHandler) GetScreen(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	step, err := strconv.Atoi(c.DefaultQuery("step", "0"))
	if err != nil {
		utils.BadRequest(c, "step must be an integer")
		return
	}

	profile := ps.Get()
	screen := onboarding.ScreenAt(step, profile.ServiceAreas)
	utils.Success(c, "Screen resolved", gin.H{
		"step":       step,
		"screen":     screen,
		"totalSteps": onboarding.TotalSteps(profile.ServiceAreas),
		"terminal":   screen.Kind == onboarding.ScreenCompletion,
	})
}

// GetState handles GET /onboarding/state: the flow length for the current
// selection plus the completion flag.
func (h *OnboardingHandler) GetState(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	profile := ps.Get()
	utils.Success(c, "Onboarding state", gin.H{
		"totalSteps":   onboarding.TotalSteps(profile.ServiceAreas),
		"serviceAreas": profile.ServiceAreas,
		"completed":    profile.OnboardingCompleted,
	})
}

// Complete handles POST /onboarding/complete: persists the completion flag
// (owned here, never by the sequencer) and returns the summary suggestions
// for the completion screen.
func (h *OnboardingHandler) Complete(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	profile := ps.CompleteOnboarding()
	utils.Success(c, "Onboarding completed", gin.H{
		"profile":         profile,
		"recommendations": recommend.ForProfile(profile),
	})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// CheckInHandler records and lists daily health check-ins.
type CheckInHandler struct {
	Store storage.Store
}

// NewCheckInHandler creates a new CheckInHandler.
func NewCheckInHandler(store storage.Store) *CheckInHandler {
	return &CheckInHandler{Store: store}
}

func (h *CheckInHandler) checkins(c *gin.Context) (*stores.CheckInStore, bool) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return nil, false
	}
	return stores.NewCheckInStore(h.Store, id), true
}

// CreateCheckInRequest represents the request body for a daily check-in.
type CreateCheckInRequest struct {
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// CreateCheckIn handles POST /checkins.
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	cs, ok := h.checkins(c)
	if !ok {
		return
	}

	var req CreateCheckInRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	checkin := cs.Add(models.CheckIn{
		Mood:     req.Mood,
		Symptoms: req.Symptoms,
		Notes:    req.Notes,
	})
	utils.Created(c, "Check-in recorded", checkin)
}

// GetCheckIns handles GET /checkins.
func (h *CheckInHandler) GetCheckIns(c *gin.Context) {
	cs, ok := h.checkins(c)
	if !ok {
		return
	}
	utils.Success(c, "Check-ins fetched", cs.All())
}

package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// AppointmentHandler handles appointment reminder requests. Reminders track
// visits the user books by phone outside the app; nothing here talks to a
// provider system.
type AppointmentHandler struct {
	Store storage.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store storage.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: store}
}

func (h *AppointmentHandler) reminders(c *gin.Context) (*stores.AppointmentStore, bool) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return nil, false
	}
	return stores.NewAppointmentStore(h.Store, id), true
}

// CreateAppointmentRequest represents the request body for creating a
// reminder. The clinic block is a snapshot typed in or copied from the
// directory, not a reference.
type CreateAppointmentRequest struct {
	ClinicName          string    `json:"clinicName" binding:"required"`
	ClinicAddress       string    `json:"clinicAddress"`
	ClinicPhone         string    `json:"clinicPhone"`
	VisitType           string    `json:"visitType"`
	Date                time.Time `json:"date" binding:"required"`
	NeedsInterpreter    bool      `json:"needsInterpreter"`
	NeedsTransportation bool      `json:"needsTransportation"`
	Notes               string    `json:"notes"`
}

// CreateAppointment handles creating a new reminder.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt := rs.Add(models.Appointment{
		Clinic: models.ClinicSnapshot{
			Name:    req.ClinicName,
			Address: req.ClinicAddress,
			Phone:   req.ClinicPhone,
		},
		VisitType:           req.VisitType,
		Date:                req.Date,
		NeedsInterpreter:    req.NeedsInterpreter,
		NeedsTransportation: req.NeedsTransportation,
		Notes:               req.Notes,
	})

	utils.Created(c, "Appointment reminder created", appt)
}

// GetAppointments handles GET /appointments with the full list.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}
	utils.Success(c, "Appointments fetched", rs.All())
}

// GetUpcoming handles GET /appointments/upcoming.
func (h *AppointmentHandler) GetUpcoming(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}
	utils.Success(c, "Upcoming appointments fetched", rs.Upcoming(time.Now()))
}

// GetPast handles GET /appointments/past.
func (h *AppointmentHandler) GetPast(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}
	utils.Success(c, "Past appointments fetched", rs.Past(time.Now()))
}

// UpdateAppointmentRequest represents the request body for updating a
// reminder.
type UpdateAppointmentRequest struct {
	ClinicName          string                   `json:"clinicName" binding:"required"`
	ClinicAddress       string                   `json:"clinicAddress"`
	ClinicPhone         string                   `json:"clinicPhone"`
	VisitType           string                   `json:"visitType"`
	Date                time.Time                `json:"date" binding:"required"`
	Status              models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled confirmed cancelled completed"`
	NeedsInterpreter    bool                     `json:"needsInterpreter"`
	NeedsTransportation bool                     `json:"needsTransportation"`
	Notes               string                   `json:"notes"`
}

// UpdateAppointment handles PUT /appointments/:id. An unknown ID yields a
// 404 toward the client; the store itself treats the miss as a no-op.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusScheduled
	}

	appt, found := rs.Update(models.Appointment{
		ID: c.Param("id"),
		Clinic: models.ClinicSnapshot{
			Name:    req.ClinicName,
			Address: req.ClinicAddress,
			Phone:   req.ClinicPhone,
		},
		VisitType:           req.VisitType,
		Date:                req.Date,
		Status:              status,
		NeedsInterpreter:    req.NeedsInterpreter,
		NeedsTransportation: req.NeedsTransportation,
		Notes:               req.Notes,
	})
	if !found {
		utils.NotFound(c, "Appointment not found")
		return
	}

	utils.Success(c, "Appointment updated", appt)
}

// CancelAppointment handles POST /appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}

	appt, found := rs.Cancel(c.Param("id"))
	if !found {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment cancelled", appt)
}

// DeleteAppointment handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	rs, ok := h.reminders(c)
	if !ok {
		return
	}

	if !rs.Delete(c.Param("id")) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment deleted", nil)
}

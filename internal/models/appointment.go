package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment reminder.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValidAppointmentStatus reports whether s is a known status value.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ClinicSnapshot captures the clinic's contact details at the time the
// reminder is created. It is a copy, not a live reference into the directory.
type ClinicSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Appointment is a user-entered reminder for a visit booked externally (by
// phone), not a live booking with a provider.
type Appointment struct {
	ID                  string            `json:"id"`
	Clinic              ClinicSnapshot    `json:"clinic"`
	VisitType           string            `json:"visitType,omitempty"`
	Date                time.Time         `json:"date"`
	Status              AppointmentStatus `json:"status"`
	NeedsInterpreter    bool              `json:"needsInterpreter"`
	NeedsTransportation bool              `json:"needsTransportation"`
	Notes               string            `json:"notes,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// Active reports whether the reminder still counts toward the upcoming list.
func (a *Appointment) Active() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

package stores

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

// appointmentsSchemaVersion is the persisted reminder collection schema.
const appointmentsSchemaVersion = 1

// appointmentBlob is the persisted shape of the whole reminder collection.
type appointmentBlob struct {
	SchemaVersion int                  `json:"schemaVersion"`
	Appointments  []models.Appointment `json:"appointments"`
}

// AppointmentStore manages one installation's appointment reminders. It is
// the sole mutator of the collection; every mutation re-serializes the whole
// list to a single storage key.
type AppointmentStore struct {
	store storage.Store
	key   string
}

// NewAppointmentStore scopes a reminder store to an installation ID.
func NewAppointmentStore(store storage.Store, installationID string) *AppointmentStore {
	return &AppointmentStore{store: store, key: "appointments:" + installationID}
}

func (s *AppointmentStore) load() []models.Appointment {
	data, ok, err := s.store.Get(s.key)
	if err != nil {
		log.Printf("appointment store: load failed, starting empty: %v", err)
		return []models.Appointment{}
	}
	if !ok {
		return []models.Appointment{}
	}

	var blob appointmentBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		log.Printf("appointment store: corrupt blob, starting empty: %v", err)
		return []models.Appointment{}
	}
	if blob.Appointments == nil {
		return []models.Appointment{}
	}
	return blob.Appointments
}

func (s *AppointmentStore) persist(list []models.Appointment) {
	data, err := json.Marshal(appointmentBlob{
		SchemaVersion: appointmentsSchemaVersion,
		Appointments:  list,
	})
	if err != nil {
		log.Printf("appointment store: encode failed: %v", err)
		return
	}
	if err := s.store.Put(s.key, data); err != nil {
		log.Printf("appointment store: save failed: %v", err)
	}
}

// All returns every stored reminder in insertion order.
func (s *AppointmentStore) All() []models.Appointment {
	return s.load()
}

// Get returns a reminder by ID.
func (s *AppointmentStore) Get(id string) (models.Appointment, bool) {
	for _, a := range s.load() {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// Add assigns a fresh identity and timestamps, appends the reminder and
// persists immediately. A missing status defaults to scheduled.
func (s *AppointmentStore) Add(appt models.Appointment) models.Appointment {
	now := time.Now().UTC()
	appt.ID = uuid.New().String()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if appt.Status == "" {
		appt.Status = models.StatusScheduled
	}

	list := append(s.load(), appt)
	s.persist(list)
	return appt
}

// Update replaces the entry matching appt.ID and bumps its update timestamp.
// A missing identity is a silent no-op toward the caller; the miss is logged.
func (s *AppointmentStore) Update(appt models.Appointment) (models.Appointment, bool) {
	list := s.load()
	for i := range list {
		if list[i].ID != appt.ID {
			continue
		}
		appt.CreatedAt = list[i].CreatedAt
		appt.UpdatedAt = time.Now().UTC()
		list[i] = appt
		s.persist(list)
		return appt, true
	}
	log.Printf("appointment store: update for unknown id %q ignored", appt.ID)
	return models.Appointment{}, false
}

// Cancel marks the reminder cancelled and bumps its update timestamp, with
// the same lookup semantics as Update.
func (s *AppointmentStore) Cancel(id string) (models.Appointment, bool) {
	list := s.load()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = models.StatusCancelled
		list[i].UpdatedAt = time.Now().UTC()
		s.persist(list)
		return list[i], true
	}
	log.Printf("appointment store: cancel for unknown id %q ignored", id)
	return models.Appointment{}, false
}

// Delete removes the reminder by identity; deleting a missing ID is a no-op.
func (s *AppointmentStore) Delete(id string) bool {
	list := s.load()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		s.persist(list)
		return true
	}
	log.Printf("appointment store: delete for unknown id %q ignored", id)
	return false
}

// Upcoming returns reminders at or after now that are still scheduled or
// confirmed, soonest first.
func (s *AppointmentStore) Upcoming(now time.Time) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range s.load() {
		if a.Active() && !a.Date.Before(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Past returns reminders whose date has elapsed or that were completed, most
// recent first. Cancelled future reminders appear in neither list until
// their date passes.
func (s *AppointmentStore) Past(now time.Time) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range s.load() {
		if a.Date.Before(now) || a.Status == models.StatusCompleted {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

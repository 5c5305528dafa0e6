package stores

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

// CheckInStore keeps the append-only daily health check-in log of one
// installation under its own storage key.
type CheckInStore struct {
	store storage.Store
	key   string
}

// NewCheckInStore scopes a check-in store to an installation ID.
func NewCheckInStore(store storage.Store, installationID string) *CheckInStore {
	return &CheckInStore{store: store, key: "checkins:" + installationID}
}

func (s *CheckInStore) load() []models.CheckIn {
	data, ok, err := s.store.Get(s.key)
	if err != nil {
		log.Printf("checkin store: load failed, starting empty: %v", err)
		return []models.CheckIn{}
	}
	if !ok {
		return []models.CheckIn{}
	}

	var list []models.CheckIn
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("checkin store: corrupt blob, starting empty: %v", err)
		return []models.CheckIn{}
	}
	for i := range list {
		list[i].Normalize()
	}
	return list
}

// Add appends a check-in with a fresh identity and timestamp.
func (s *CheckInStore) Add(c models.CheckIn) models.CheckIn {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	c.Normalize()

	list := append(s.load(), c)
	data, err := json.Marshal(list)
	if err != nil {
		log.Printf("checkin store: encode failed: %v", err)
		return c
	}
	if err := s.store.Put(s.key, data); err != nil {
		log.Printf("checkin store: save failed: %v", err)
	}
	return c
}

// All returns every check-in, newest last.
func (s *CheckInStore) All() []models.CheckIn {
	return s.load()
}

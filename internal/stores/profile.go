// Package stores holds the collection managers that own all mutable state:
// the profile record, the appointment reminder list and the check-in log.
// Each store is the sole mutator and sole persistence authority for its blob.
// Failures degrade to safe defaults and are logged, never surfaced to the
// user-facing layer as hard errors.
package stores

import (
	"encoding/json"
	"log"
	"time"

	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

// ProfileStore owns the single profile record of one installation. All field
// writes go through explicit mutators so state changes stay auditable; every
// mutation persists the whole record immediately.
type ProfileStore struct {
	store storage.Store
	key   string
}

// NewProfileStore scopes a profile store to an installation ID.
func NewProfileStore(store storage.Store, installationID string) *ProfileStore {
	return &ProfileStore{store: store, key: "profile:" + installationID}
}

// Get loads the persisted profile, falling back to an empty profile when the
// blob is missing or does not decode. Decode failures are logged but never
// block the user.
func (s *ProfileStore) Get() *models.Profile {
	data, ok, err := s.store.Get(s.key)
	if err != nil {
		log.Printf("profile store: load failed, starting empty: %v", err)
		return models.NewProfile()
	}
	if !ok {
		return models.NewProfile()
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("profile store: corrupt profile blob, starting empty: %v", err)
		return models.NewProfile()
	}
	p.Normalize()
	return &p
}

// Save persists the profile and bumps its update timestamp. Persistence is
// best-effort: a write failure is logged and the in-memory record stays valid.
func (s *ProfileStore) Save(p *models.Profile) {
	p.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("profile store: encode failed: %v", err)
		return
	}
	if err := s.store.Put(s.key, data); err != nil {
		log.Printf("profile store: save failed: %v", err)
	}
}

// Update applies a mutation to the current profile and persists the result.
func (s *ProfileStore) Update(mutate func(*models.Profile)) *models.Profile {
	p := s.Get()
	mutate(p)
	p.Normalize()
	s.Save(p)
	return p
}

// Replace overwrites the whole record, keeping the original creation time.
func (s *ProfileStore) Replace(p *models.Profile) *models.Profile {
	current := s.Get()
	p.SchemaVersion = models.ProfileSchemaVersion
	p.CreatedAt = current.CreatedAt
	p.Normalize()
	s.Save(p)
	return p
}

// SetServiceAreas stores the selected areas in canonical sorted form.
func (s *ProfileStore) SetServiceAreas(areas []models.ServiceArea) *models.Profile {
	return s.Update(func(p *models.Profile) {
		p.ServiceAreas = models.SortedAreas(areas)
	})
}

// SetLanguage records the preferred language.
func (s *ProfileStore) SetLanguage(lang string) *models.Profile {
	return s.Update(func(p *models.Profile) { p.Language = lang })
}

// CompleteOnboarding flips the completion flag. The sequencer never owns this
// flag; it is set here once the caller reaches the completion screen.
func (s *ProfileStore) CompleteOnboarding() *models.Profile {
	return s.Update(func(p *models.Profile) {
		if p.OnboardingCompleted {
			return
		}
		now := time.Now().UTC()
		p.OnboardingCompleted = true
		p.CompletedAt = &now
	})
}

// Patch shallow-merges a JSON object into the persisted profile: only the
// keys present in the patch change, everything else is preserved. Unknown
// keys are dropped by the decoder rather than rejected.
func (s *ProfileStore) Patch(patch []byte) (*models.Profile, error) {
	p := s.Get()
	if err := json.Unmarshal(patch, p); err != nil {
		return nil, err
	}
	if p.ServiceAreas != nil {
		p.ServiceAreas = models.SortedAreas(p.ServiceAreas)
	}
	p.SchemaVersion = models.ProfileSchemaVersion
	p.Normalize()
	s.Save(p)
	return p, nil
}

package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

func TestGetOnFreshInstallationReturnsEmptyProfile(t *testing.T) {
	s := NewProfileStore(storage.NewMemoryStore(), "install-1")

	p := s.Get()
	assert.Equal(t, models.ProfileSchemaVersion, p.SchemaVersion)
	assert.Empty(t, p.Name)
	assert.NotNil(t, p.ServiceAreas)
	assert.NotNil(t, p.HealthConcerns)
	assert.NotNil(t, p.JobBarriers)
	assert.NotNil(t, p.WorkTypes)
	assert.False(t, p.OnboardingCompleted)
}

func TestProfileRoundTripPreservesEveryField(t *testing.T) {
	backing := storage.NewMemoryStore()
	s := NewProfileStore(backing, "install-1")

	lat, lon := 39.9612, -83.0007
	saved := s.Update(func(p *models.Profile) {
		p.Name = "Amina"
		p.Language = "so"
		p.ServiceAreas = []models.ServiceArea{models.AreaHealthcare, models.AreaHousing}
		p.InsuranceStatus = models.InsuranceNone
		p.ImmigrationStatus = models.ImmigrationRefugee
		p.HealthConcerns = []models.HealthConcern{models.ConcernPregnancy}
		p.UrgentHealthNeed = "prenatal visit overdue"
		p.HousingSituation = models.HousingShelter
		p.HasChildren = true
		p.City = "Columbus"
		p.ZipCode = "43215"
		p.Latitude = &lat
		p.Longitude = &lon
	})

	reloaded := NewProfileStore(backing, "install-1").Get()
	assert.Equal(t, saved, reloaded)
}

func TestRoundTripDefaultsEmptyArraysAndUnsetEnums(t *testing.T) {
	backing := storage.NewMemoryStore()
	s := NewProfileStore(backing, "install-1")
	s.Update(func(p *models.Profile) { p.Name = "Yuri" })

	reloaded := NewProfileStore(backing, "install-1").Get()
	assert.Equal(t, []models.ServiceArea{}, reloaded.ServiceAreas)
	assert.Equal(t, []models.HealthConcern{}, reloaded.HealthConcerns)
	assert.Equal(t, []models.JobBarrier{}, reloaded.JobBarriers)
	assert.Equal(t, []string{}, reloaded.WorkTypes)
	assert.Equal(t, models.InsuranceStatus(""), reloaded.InsuranceStatus)
	assert.Nil(t, reloaded.Latitude)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestCorruptProfileBlobFallsBackToEmpty(t *testing.T) {
	backing := storage.NewMemoryStore()
	require.NoError(t, backing.Put("profile:install-1", []byte("\x00garbage")))

	p := NewProfileStore(backing, "install-1").Get()
	assert.Empty(t, p.Name)
	assert.Equal(t, models.ProfileSchemaVersion, p.SchemaVersion)
}

func TestOlderBlobWithoutVersionOrArraysNormalizes(t *testing.T) {
	backing := storage.NewMemoryStore()
	// A pre-versioning blob: no schemaVersion, no array fields at all.
	require.NoError(t, backing.Put("profile:install-1", []byte(`{"name":"Omar","language":"ar"}`)))

	p := NewProfileStore(backing, "install-1").Get()
	assert.Equal(t, "Omar", p.Name)
	assert.Equal(t, models.ProfileSchemaVersion, p.SchemaVersion)
	assert.Equal(t, []models.ServiceArea{}, p.ServiceAreas)
}

func TestSetServiceAreasStoresCanonicalSortedForm(t *testing.T) {
	s := NewProfileStore(storage.NewMemoryStore(), "install-1")

	p := s.SetServiceAreas([]models.ServiceArea{models.AreaHousing, models.AreaEmployment, models.AreaHousing})
	assert.Equal(t, []models.ServiceArea{models.AreaEmployment, models.AreaHousing}, p.ServiceAreas)
}

func TestCompleteOnboardingFlipsFlagOnce(t *testing.T) {
	s := NewProfileStore(storage.NewMemoryStore(), "install-1")

	first := s.CompleteOnboarding()
	require.True(t, first.OnboardingCompleted)
	require.NotNil(t, first.CompletedAt)

	second := s.CompleteOnboarding()
	assert.Equal(t, first.CompletedAt, second.CompletedAt)
}

func TestPatchMergesOnlySuppliedFields(t *testing.T) {
	s := NewProfileStore(storage.NewMemoryStore(), "install-1")
	s.Update(func(p *models.Profile) {
		p.Name = "Amina"
		p.Language = "so"
		p.InsuranceStatus = models.InsuranceNone
	})

	patched, err := s.Patch([]byte(`{"language":"en","hasChildren":true}`))
	require.NoError(t, err)
	assert.Equal(t, "Amina", patched.Name)
	assert.Equal(t, "en", patched.Language)
	assert.True(t, patched.HasChildren)
	assert.Equal(t, models.InsuranceNone, patched.InsuranceStatus)
}

func TestPatchRejectsMalformedJSONWithoutSaving(t *testing.T) {
	backing := storage.NewMemoryStore()
	s := NewProfileStore(backing, "install-1")
	s.Update(func(p *models.Profile) { p.Name = "Amina" })

	_, err := s.Patch([]byte(`{"language":`))
	require.Error(t, err)
	assert.Equal(t, "Amina", NewProfileStore(backing, "install-1").Get().Name)
}

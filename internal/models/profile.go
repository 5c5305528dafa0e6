package models

import (
	"sort"
	"time"
)

// ServiceArea is a top-level domain the user opts into during onboarding.
type ServiceArea string

const (
	AreaEmployment ServiceArea = "employment"
	AreaHealthcare ServiceArea = "healthcare"
	AreaHousing    ServiceArea = "housing"
)

// AllServiceAreas lists every supported area in lexicographic order.
var AllServiceAreas = []ServiceArea{AreaEmployment, AreaHealthcare, AreaHousing}

// IsValidServiceArea reports whether s names a supported service area.
func IsValidServiceArea(s ServiceArea) bool {
	for _, a := range AllServiceAreas {
		if a == s {
			return true
		}
	}
	return false
}

// SortedAreas returns a lexicographically sorted copy of areas with
// duplicates and unknown values removed. The onboarding sequence depends on
// this order, never on selection order.
func SortedAreas(areas []ServiceArea) []ServiceArea {
	seen := make(map[ServiceArea]bool, len(areas))
	out := make([]ServiceArea, 0, len(areas))
	for _, a := range areas {
		if !IsValidServiceArea(a) || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InsuranceStatus enum
type InsuranceStatus string

const (
	InsuranceNone     InsuranceStatus = "none"
	InsuranceUnsure   InsuranceStatus = "unsure"
	InsuranceMedicaid InsuranceStatus = "medicaid"
	InsurancePrivate  InsuranceStatus = "private"
	InsuranceOther    InsuranceStatus = "other"
)

// ImmigrationStatus enum
type ImmigrationStatus string

const (
	ImmigrationRefugee           ImmigrationStatus = "refugee"
	ImmigrationAsylumSeeker      ImmigrationStatus = "asylum_seeker"
	ImmigrationPermanentResident ImmigrationStatus = "permanent_resident"
	ImmigrationCitizen           ImmigrationStatus = "citizen"
	ImmigrationOther             ImmigrationStatus = "other"
)

// HealthConcern is a self-reported health need flagged during onboarding.
type HealthConcern string

const (
	ConcernMentalHealth     HealthConcern = "mental_health"
	ConcernDental           HealthConcern = "dental"
	ConcernVision           HealthConcern = "vision"
	ConcernPregnancy        HealthConcern = "pregnancy"
	ConcernChildHealth      HealthConcern = "child_health"
	ConcernChronicCondition HealthConcern = "chronic_condition"
	ConcernMedication       HealthConcern = "medication"
	ConcernVaccination      HealthConcern = "vaccination"
)

// JobBarrier is an obstacle to employment flagged during onboarding.
type JobBarrier string

const (
	BarrierTransportation JobBarrier = "transportation"
	BarrierMissingID      JobBarrier = "missing_id"
	BarrierCriminalRecord JobBarrier = "criminal_record"
	BarrierChildcare      JobBarrier = "childcare"
	BarrierLanguage       JobBarrier = "language"
	BarrierDisability     JobBarrier = "disability"
)

// HousingSituation enum
type HousingSituation string

const (
	HousingStreet       HousingSituation = "street"
	HousingVehicle      HousingSituation = "vehicle"
	HousingShelter      HousingSituation = "shelter"
	HousingDoubledUp    HousingSituation = "doubled_up"
	HousingTransitional HousingSituation = "transitional"
	HousingStable       HousingSituation = "stable"
)

// Unstable reports whether the situation counts as housing instability for
// eligibility purposes (everything short of stable housing).
func (h HousingSituation) Unstable() bool {
	switch h {
	case HousingStreet, HousingVehicle, HousingShelter, HousingDoubledUp, HousingTransitional:
		return true
	}
	return false
}

// ProfileSchemaVersion is the current persisted profile schema.
const ProfileSchemaVersion = 1

// Profile is the persisted record of a single installation's self-reported
// situation and preferences. One instance per installation; fields for
// unselected service areas stay inert but are still persisted.
type Profile struct {
	SchemaVersion int    `json:"schemaVersion"`
	Name          string `json:"name,omitempty"`
	Language      string `json:"language,omitempty"`

	ServiceAreas []ServiceArea `json:"serviceAreas"`

	// Healthcare
	InsuranceStatus   InsuranceStatus   `json:"insuranceStatus,omitempty"`
	ImmigrationStatus ImmigrationStatus `json:"immigrationStatus,omitempty"`
	HealthConcerns    []HealthConcern   `json:"healthConcerns"`
	UrgentHealthNeed  string            `json:"urgentHealthNeed,omitempty"`

	// Employment
	HasResume     bool         `json:"hasResume"`
	NeedsTraining bool         `json:"needsTraining"`
	JobBarriers   []JobBarrier `json:"jobBarriers"`
	WorkTypes     []string     `json:"workTypes"`

	// Housing
	HousingSituation HousingSituation `json:"housingSituation,omitempty"`
	OnWaitlist       bool             `json:"onWaitlist"`
	IsVeteran        bool             `json:"isVeteran"`
	HasChildren      bool             `json:"hasChildren"`
	NeedsIDRecovery  bool             `json:"needsIdRecovery"`

	// Location (manual ZIP entry or device capture)
	City      string   `json:"city,omitempty"`
	ZipCode   string   `json:"zipCode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	OnboardingCompleted bool       `json:"onboardingCompleted"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
}

// NewProfile returns an empty profile at the current schema version.
func NewProfile() *Profile {
	now := time.Now().UTC()
	p := &Profile{
		SchemaVersion: ProfileSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.Normalize()
	return p
}

// Normalize fills in defaults for fields that older (or partially written)
// blobs may omit, so a decoded profile is always safe to use.
func (p *Profile) Normalize() {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = ProfileSchemaVersion
	}
	if p.ServiceAreas == nil {
		p.ServiceAreas = []ServiceArea{}
	}
	if p.HealthConcerns == nil {
		p.HealthConcerns = []HealthConcern{}
	}
	if p.JobBarriers == nil {
		p.JobBarriers = []JobBarrier{}
	}
	if p.WorkTypes == nil {
		p.WorkTypes = []string{}
	}
}

// HasArea reports whether the user selected the given service area.
func (p *Profile) HasArea(a ServiceArea) bool {
	for _, s := range p.ServiceAreas {
		if s == a {
			return true
		}
	}
	return false
}

// HasConcern reports whether a health concern was flagged.
func (p *Profile) HasConcern(c HealthConcern) bool {
	for _, h := range p.HealthConcerns {
		if h == c {
			return true
		}
	}
	return false
}

// HasBarrier reports whether a job barrier was flagged.
func (p *Profile) HasBarrier(b JobBarrier) bool {
	for _, j := range p.JobBarriers {
		if j == b {
			return true
		}
	}
	return false
}

// Package recommend derives prioritized service suggestions from a profile.
// Every function is a pure rule evaluation: suggestions are matched by simple
// enum and membership checks, ordered by insertion, never scored or cached.
package recommend

import (
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
)

// Suggestion is a single rule-derived service suggestion shown on the
// dashboard and the onboarding completion summary.
type Suggestion struct {
	ID     string             `json:"id"`
	Label  string             `json:"label"`
	Icon   string             `json:"icon"`
	Area   models.ServiceArea `json:"area"`
	Detail string             `json:"detail,omitempty"`
}

// MaxHealthcareSuggestions caps the healthcare list for display. A policy
// constant, not an invariant; the other domains are not truncated.
const MaxHealthcareSuggestions = 4

// ForProfile evaluates every domain the user selected. Domains the user did
// not opt into yield no suggestions.
func ForProfile(p *models.Profile) map[models.ServiceArea][]Suggestion {
	out := make(map[models.ServiceArea][]Suggestion)
	if p.HasArea(models.AreaHealthcare) {
		out[models.AreaHealthcare] = Healthcare(p)
	}
	if p.HasArea(models.AreaEmployment) {
		out[models.AreaEmployment] = Employment(p)
	}
	if p.HasArea(models.AreaHousing) {
		out[models.AreaHousing] = Housing(p)
	}
	return out
}

// Healthcare applies the healthcare rules in fixed order: coverage first,
// then population-specific programs, then one entry per flagged concern. An
// urgent need pre-empts everything at index 0. If no rule fires the user
// still gets a generic primary-care pointer. The result is truncated to
// MaxHealthcareSuggestions.
func Healthcare(p *models.Profile) []Suggestion {
	var out []Suggestion

	if p.InsuranceStatus == models.InsuranceNone || p.InsuranceStatus == models.InsuranceUnsure {
		out = append(out,
			Suggestion{ID: "free-clinic", Label: "Free clinic", Icon: "local_hospital", Area: models.AreaHealthcare, Detail: "Clinics that treat patients at no cost, no insurance needed"},
			Suggestion{ID: "sliding-scale", Label: "Sliding-scale care", Icon: "payments", Area: models.AreaHealthcare, Detail: "Community health centers that charge by what you can pay"},
		)
	}
	if p.ImmigrationStatus == models.ImmigrationRefugee || p.ImmigrationStatus == models.ImmigrationAsylumSeeker {
		out = append(out, Suggestion{ID: "refugee-health", Label: "Refugee health program", Icon: "public", Area: models.AreaHealthcare, Detail: "Health screening and care programs for refugees and asylum seekers"})
	}
	if p.HousingSituation.Unstable() {
		out = append(out, Suggestion{ID: "homeless-health", Label: "Healthcare for the homeless", Icon: "night_shelter", Area: models.AreaHealthcare, Detail: "Clinics serving people without stable housing"})
	}

	for _, rule := range concernRules {
		if p.HasConcern(rule.concern) {
			out = append(out, rule.suggestion)
		}
	}

	if p.UrgentHealthNeed != "" {
		urgent := Suggestion{ID: "urgent-care", Label: "Urgent care now", Icon: "emergency", Area: models.AreaHealthcare, Detail: "Walk-in urgent care and emergency options"}
		out = append([]Suggestion{urgent}, out...)
	}

	if len(out) == 0 {
		out = append(out, Suggestion{ID: "primary-care", Label: "Find primary care", Icon: "medical_services", Area: models.AreaHealthcare, Detail: "Get connected with a regular doctor"})
	}

	if len(out) > MaxHealthcareSuggestions {
		out = out[:MaxHealthcareSuggestions]
	}
	return out
}

var concernRules = []struct {
	concern    models.HealthConcern
	suggestion Suggestion
}{
	{models.ConcernMentalHealth, Suggestion{ID: "mental-health", Label: "Mental health support", Icon: "psychology", Area: models.AreaHealthcare}},
	{models.ConcernDental, Suggestion{ID: "dental", Label: "Dental care", Icon: "dentistry", Area: models.AreaHealthcare}},
	{models.ConcernVision, Suggestion{ID: "vision", Label: "Vision care", Icon: "visibility", Area: models.AreaHealthcare}},
	{models.ConcernPregnancy, Suggestion{ID: "prenatal", Label: "Prenatal care", Icon: "pregnant_woman", Area: models.AreaHealthcare}},
	{models.ConcernChildHealth, Suggestion{ID: "child-health", Label: "Children's health services", Icon: "child_care", Area: models.AreaHealthcare}},
	{models.ConcernChronicCondition, Suggestion{ID: "chronic-care", Label: "Chronic condition care", Icon: "monitor_heart", Area: models.AreaHealthcare}},
	{models.ConcernMedication, Suggestion{ID: "medication-help", Label: "Low-cost medications", Icon: "medication", Area: models.AreaHealthcare}},
	{models.ConcernVaccination, Suggestion{ID: "vaccinations", Label: "Free vaccinations", Icon: "vaccines", Area: models.AreaHealthcare}},
}

// Employment applies the employment rules; a generic job-placement entry is
// always appended last regardless of other matches.
func Employment(p *models.Profile) []Suggestion {
	var out []Suggestion

	if !p.HasResume {
		out = append(out, Suggestion{ID: "resume-help", Label: "Resume help", Icon: "description", Area: models.AreaEmployment, Detail: "Workshops that help you build a resume from scratch"})
	}
	if p.NeedsTraining {
		out = append(out, Suggestion{ID: "job-training", Label: "Job training programs", Icon: "school", Area: models.AreaEmployment, Detail: "Free skills training and certification courses"})
	}
	for _, rule := range barrierRules {
		if p.HasBarrier(rule.barrier) {
			out = append(out, rule.suggestion)
		}
	}

	out = append(out, Suggestion{ID: "job-placement", Label: "Job placement services", Icon: "work", Area: models.AreaEmployment, Detail: "Agencies that match you with open positions"})
	return out
}

var barrierRules = []struct {
	barrier    models.JobBarrier
	suggestion Suggestion
}{
	{models.BarrierTransportation, Suggestion{ID: "transport-assist", Label: "Transportation assistance", Icon: "directions_bus", Area: models.AreaEmployment}},
	{models.BarrierMissingID, Suggestion{ID: "id-documents", Label: "ID document help", Icon: "badge", Area: models.AreaEmployment}},
	{models.BarrierCriminalRecord, Suggestion{ID: "fair-chance", Label: "Fair-chance employers", Icon: "handshake", Area: models.AreaEmployment}},
	{models.BarrierChildcare, Suggestion{ID: "childcare-assist", Label: "Childcare assistance", Icon: "child_friendly", Area: models.AreaEmployment}},
	{models.BarrierLanguage, Suggestion{ID: "esl-classes", Label: "English classes", Icon: "translate", Area: models.AreaEmployment}},
	{models.BarrierDisability, Suggestion{ID: "disability-employment", Label: "Disability employment services", Icon: "accessible", Area: models.AreaEmployment}},
}

// Housing applies the housing rules; emergency shelter leads when the user
// sleeps on the street or in a vehicle, and rental assistance is always the
// final entry.
func Housing(p *models.Profile) []Suggestion {
	var out []Suggestion

	if p.HousingSituation == models.HousingStreet || p.HousingSituation == models.HousingVehicle {
		out = append(out, Suggestion{ID: "emergency-shelter", Label: "Emergency shelter", Icon: "night_shelter", Area: models.AreaHousing, Detail: "Same-day shelter beds"})
	}
	if !p.OnWaitlist {
		out = append(out, Suggestion{ID: "housing-waitlist", Label: "Join a housing waitlist", Icon: "format_list_numbered", Area: models.AreaHousing, Detail: "Get on subsidized housing lists as early as possible"})
	}
	if p.IsVeteran {
		out = append(out, Suggestion{ID: "veteran-housing", Label: "Veteran housing programs", Icon: "military_tech", Area: models.AreaHousing})
	}
	if p.HasChildren {
		out = append(out, Suggestion{ID: "family-housing", Label: "Family housing services", Icon: "family_restroom", Area: models.AreaHousing})
	}
	if p.NeedsIDRecovery {
		out = append(out, Suggestion{ID: "id-recovery", Label: "ID recovery help", Icon: "badge", Area: models.AreaHousing, Detail: "Replace lost identity documents needed for housing applications"})
	}

	out = append(out, Suggestion{ID: "rental-assistance", Label: "Rental assistance", Icon: "home", Area: models.AreaHousing, Detail: "Emergency rent and deposit help"})
	return out
}

// Package onboarding computes which question screen the onboarding flow
// shows for a given step counter. The counter itself lives with the client;
// every function here is pure so advancing and going back are symmetric.
package onboarding

import (
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
)

// ScreenKind identifies one of the fixed onboarding screens.
type ScreenKind string

const (
	ScreenWelcome          ScreenKind = "welcome"
	ScreenNameInput        ScreenKind = "name_input"
	ScreenServiceSelection ScreenKind = "service_selection"
	ScreenDomainQuestions  ScreenKind = "domain_questions"
	ScreenLocationInput    ScreenKind = "location_input"
	ScreenCompletion       ScreenKind = "completion"
)

// Screen is the resolved screen for a step. Area and QuestionSet are only
// meaningful when Kind is ScreenDomainQuestions; QuestionSet is 1 or 2.
type Screen struct {
	Kind        ScreenKind         `json:"kind"`
	Area        models.ServiceArea `json:"area,omitempty"`
	QuestionSet int                `json:"questionSet,omitempty"`
}

const (
	prologueSteps      = 3 // welcome, name input, service selection
	epilogueSteps      = 2 // location input, completion
	questionsPerDomain = 2
)

// TotalSteps returns the number of screens in the flow for the given
// selection: the fixed prologue and epilogue plus two question screens per
// selected service area.
func TotalSteps(areas []models.ServiceArea) int {
	return prologueSteps + epilogueSteps + questionsPerDomain*len(models.SortedAreas(areas))
}

// ScreenAt resolves a step counter to a screen. The selected areas are
// evaluated fresh on every call and visited in lexicographic order, never in
// selection order, so the sequence is stable across runs. Any step outside
// [0, TotalSteps) resolves to the completion screen; the sequencer never
// indexes out of range and never errors.
func ScreenAt(step int, areas []models.ServiceArea) Screen {
	sorted := models.SortedAreas(areas)
	total := prologueSteps + epilogueSteps + questionsPerDomain*len(sorted)

	if step < 0 || step >= total {
		return Screen{Kind: ScreenCompletion}
	}

	switch step {
	case 0:
		return Screen{Kind: ScreenWelcome}
	case 1:
		return Screen{Kind: ScreenNameInput}
	case 2:
		return Screen{Kind: ScreenServiceSelection}
	}

	body := step - prologueSteps
	if body < questionsPerDomain*len(sorted) {
		return Screen{
			Kind:        ScreenDomainQuestions,
			Area:        sorted[body/questionsPerDomain],
			QuestionSet: body%questionsPerDomain + 1,
		}
	}

	if step == total-2 {
		return Screen{Kind: ScreenLocationInput}
	}
	return Screen{Kind: ScreenCompletion}
}

// IsTerminal reports whether the step has reached (or passed) the completion
// screen, after which the caller persists the profile and flips the
// onboarding-completed flag.
func IsTerminal(step int, areas []models.ServiceArea) bool {
	return ScreenAt(step, areas).Kind == ScreenCompletion
}

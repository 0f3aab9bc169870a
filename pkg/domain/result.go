package domain

import (
	"maps"
	"slices"
)

// Result holds the exact expectations of one enumeration.
type Result struct {
	Model Model `json:"model"`

	ExpectedTime   float64 `json:"expected_time"`
	ExpectedEnergy float64 `json:"expected_energy"`

	// ProbabilityMass is the probability summed over terminal states. It should be 1.
	ProbabilityMass float64 `json:"probability_mass"`

	TerminalStates int `json:"terminal_states"`
	ExpandedStates int `json:"expanded_states"`

	// MaxElapsed is the latest slot at which some branch completed.
	MaxElapsed int `json:"max_elapsed"`

	// Distribution maps a completion slot to the probability of completing exactly then.
	Distribution map[int]float64 `json:"distribution"`
}

// Clone returns a copy that does not share the distribution map.
func (r Result) Clone() Result {
	r.Distribution = maps.Clone(r.Distribution)
	return r
}

// Slots returns the completion slots of the distribution in ascending order.
func (r Result) Slots() []int {
	return slices.Sorted(maps.Keys(r.Distribution))
}

package domain

// State represents one node of the branching tree.
// It is a value type: children are derived by copying the parent and
// adjusting a few fields, so siblings never share mutable data.
type State struct {
	// Probability is the joint probability of every branch choice leading here.
	Probability float64 `json:"probability"`

	// Elapsed is the slot index of this state (0 is the root, before any activity).
	Elapsed int `json:"elapsed"`

	// Energy is the total spent by all nodes so far, listening and transmitting.
	Energy int `json:"energy"`

	// Finished marks nodes that already replied and went silent for the rest of the run.
	Finished [NodeCount]bool `json:"finished"`
}

// NewRootState creates the state at slot 0 with the whole probability mass.
func NewRootState(finished [NodeCount]bool) State {
	return State{
		Probability: 1,
		Finished:    finished,
	}
}

// Terminal reports whether every node has finished.
func (s State) Terminal() bool {
	for _, done := range s.Finished {
		if !done {
			return false
		}
	}
	return true
}

// Remaining counts the nodes that have not finished yet.
func (s State) Remaining() int {
	n := 0
	for _, done := range s.Finished {
		if !done {
			n++
		}
	}
	return n
}

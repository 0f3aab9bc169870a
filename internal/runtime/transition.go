package runtime

import (
	"fmt"

	"github.com/aretw0/macexpect/pkg/domain"
)

// Child is one successor of an expanded state.
type Child struct {
	State domain.State
	Kind  domain.BranchKind
	// Node is the index of the replying node for BranchMatch, -1 otherwise.
	Node int
}

// Expansion is the outcome of applying the transition rules once.
type Expansion struct {
	Slot       int
	Candidates int
	Remaining  int
	Children   []Child
}

// NextSlot returns the smallest slot after from at which at least one node wakes up.
// Finished nodes still count: their schedule decides the scan, not their candidacy.
func NextSlot(m domain.Model, from int) int {
	t := from + 1
	for !anyAwake(m, t) {
		t++
	}
	return t
}

func anyAwake(m domain.Model, t int) bool {
	for i := range domain.NodeCount {
		if m.Listening(i, t) {
			return true
		}
	}
	return false
}

// Expand produces the children of a non-terminal state.
//
// At the next wake slot every unfinished, awake node is a candidate and pays
// the listening cost. If the gateway is idle there is a single child. Otherwise
// the preamble addresses one of the unfinished nodes uniformly: each candidate
// gets a matching child, and the mass of addressing a sleeping node goes to one
// miss child.
func Expand(m domain.Model, s domain.State) (Expansion, error) {
	remaining := s.Remaining()
	if remaining == 0 {
		return Expansion{}, fmt.Errorf("%w: expanding terminal state at slot %d", domain.ErrInvariant, s.Elapsed)
	}

	t := NextSlot(m, s.Elapsed)

	var candidates [domain.NodeCount]bool
	count := 0
	for i := range domain.NodeCount {
		if m.Listening(i, t) && !s.Finished[i] {
			candidates[i] = true
			count++
		}
	}

	exp := Expansion{Slot: t, Candidates: count, Remaining: remaining}

	base := s
	base.Elapsed = t
	base.Energy += count * m.ListenCost

	if m.GatewayIdle(t) {
		exp.Children = []Child{{State: base, Kind: domain.BranchIdle, Node: -1}}
		return exp, nil
	}

	exp.Children = make([]Child, 0, count+1)
	for i, listening := range candidates {
		if !listening {
			continue
		}
		child := base
		child.Probability /= float64(remaining)
		child.Energy += m.TransmitCost
		child.Finished[i] = true
		exp.Children = append(exp.Children, Child{State: child, Kind: domain.BranchMatch, Node: i})
	}

	if remaining > count {
		child := base
		child.Probability *= float64(remaining-count) / float64(remaining)
		exp.Children = append(exp.Children, Child{State: child, Kind: domain.BranchMiss, Node: -1})
	}

	return exp, nil
}

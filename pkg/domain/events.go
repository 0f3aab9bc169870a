package domain

import "context"

// EventType defines the category of the event.
type EventType string

const (
	EventExpand   EventType = "expand"
	EventBranch   EventType = "branch"
	EventTerminal EventType = "terminal"
)

// ExpandEvent is fired once per non-terminal state taken off the work queue.
type ExpandEvent struct {
	Type       EventType `json:"type"`
	Parent     State     `json:"parent"`
	Slot       int       `json:"slot"`
	Candidates int       `json:"candidates"`
	Remaining  int       `json:"remaining"`
	Children   int       `json:"children"`
}

// BranchEvent is fired for every child produced by an expansion.
type BranchEvent struct {
	Type   EventType  `json:"type"`
	Kind   BranchKind `json:"kind"`
	Parent State      `json:"parent"`
	Child  State      `json:"child"`
	// Node is the index of the replying node for BranchMatch, -1 otherwise.
	Node int `json:"node"`
}

// TerminalEvent is fired when a state with every node finished is folded into the totals.
type TerminalEvent struct {
	Type  EventType `json:"type"`
	State State     `json:"state"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnExpand   func(context.Context, *ExpandEvent)
	OnBranch   func(context.Context, *BranchEvent)
	OnTerminal func(context.Context, *TerminalEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnExpand:   chain(h.OnExpand, other.OnExpand),
		OnBranch:   chain(h.OnBranch, other.OnBranch),
		OnTerminal: chain(h.OnTerminal, other.OnTerminal),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}

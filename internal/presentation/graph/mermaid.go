package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/macexpect/pkg/domain"
)

type edge struct {
	from, to string
	kind     domain.BranchKind
	node     int
	prob     float64
}

// Tree records the top of the branching tree through lifecycle hooks.
// States with identical fields share one vertex, so the drawing is a DAG.
type Tree struct {
	until    int
	ids      map[domain.State]string
	vertices []domain.State
	edges    []edge
}

// NewTree records every edge whose child lies at or before slot until.
func NewTree(until int) *Tree {
	return &Tree{
		until: until,
		ids:   make(map[domain.State]string),
	}
}

// Hooks returns the hooks that feed the tree.
func (t *Tree) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBranch: func(_ context.Context, e *domain.BranchEvent) {
			if e.Child.Elapsed > t.until {
				return
			}
			from := t.vertex(e.Parent)
			to := t.vertex(e.Child)
			t.edges = append(t.edges, edge{
				from: from,
				to:   to,
				kind: e.Kind,
				node: e.Node,
				prob: e.Child.Probability / e.Parent.Probability,
			})
		},
	}
}

func (t *Tree) vertex(s domain.State) string {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := fmt.Sprintf("s%d", len(t.vertices))
	t.ids[s] = id
	t.vertices = append(t.vertices, s)
	return id
}

// GenerateMermaid produces a Mermaid flowchart of the recorded tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Terminal (all nodes finished): ([Stadium])
// - Default: [Rectangle]
// Edges are labelled with the branch kind and its conditional probability.
func GenerateMermaid(t *Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, s := range t.vertices {
		id := t.ids[s]
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case s.Terminal():
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"t=%d E=%d p=%.4g <br/> %s\"%s\n",
			id, opener, s.Elapsed, s.Energy, s.Probability, flags(s), closer)
	}

	for _, e := range t.edges {
		switch e.kind {
		case domain.BranchIdle:
			// Gateway silent: dotted, no probability split.
			fmt.Fprintf(&sb, "    %s -.-> %s\n", e.from, e.to)
		case domain.BranchMatch:
			fmt.Fprintf(&sb, "    %s -- \"node %d replies %.4g\" --> %s\n", e.from, e.node+1, e.prob, e.to)
		default:
			fmt.Fprintf(&sb, "    %s -- \"%s %.4g\" --> %s\n", e.from, e.kind, e.prob, e.to)
		}
	}

	sb.WriteString("\n    %% Styles\n")
	sb.WriteString("    classDef terminal fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	for _, s := range t.vertices {
		if s.Terminal() {
			fmt.Fprintf(&sb, "    class %s terminal;\n", t.ids[s])
		}
	}

	return sb.String()
}

func flags(s domain.State) string {
	var b strings.Builder
	for i, done := range s.Finished {
		if i > 0 {
			b.WriteByte(' ')
		}
		if done {
			fmt.Fprintf(&b, "n%d✓", i+1)
		} else {
			fmt.Fprintf(&b, "n%d…", i+1)
		}
	}
	return b.String()
}

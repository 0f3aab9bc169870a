package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/macexpect/internal/presentation/graph"
	"github.com/aretw0/macexpect/internal/runtime"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, m domain.Model, until int) string {
	t.Helper()
	tree := graph.NewTree(until)
	_, err := runtime.NewEngine(m, runtime.WithHooks(tree.Hooks())).Run(context.Background())
	require.NoError(t, err)
	return graph.GenerateMermaid(tree)
}

func TestGenerateMermaid_FirstSlots(t *testing.T) {
	out := render(t, domain.DefaultModel(), 6)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	// Root is a circle, slot 4 is an idle step, slot 6 splits on node 2.
	assert.Contains(t, out, `s0(("t=0 E=0 p=1 <br/> n1… n2… n3…"))`)
	assert.Contains(t, out, "s0 -.-> s1")
	assert.Contains(t, out, `s1 -- "node 2 replies 0.3333" --> s2`)
	assert.Contains(t, out, `s1 -- "miss 0.6667" --> s3`)
	assert.NotContains(t, out, "t=8")
}

func TestGenerateMermaid_TerminalStyling(t *testing.T) {
	m := domain.DefaultModel()
	m.Finished = [domain.NodeCount]bool{true, false, true}

	out := render(t, m, 72)

	assert.Contains(t, out, `s2(["t=6 E=110 p=1 <br/> n1✓ n2✓ n3✓"])`)
	assert.Contains(t, out, "class s2 terminal;")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	out := graph.GenerateMermaid(graph.NewTree(10))
	assert.Equal(t, "graph TD\n\n    %% Styles\n    classDef terminal fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n", out)
}

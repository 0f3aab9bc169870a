package ports

import (
	"context"

	"github.com/aretw0/macexpect/pkg/domain"
)

// Analyzer is the interface used by adapters (e.g., HTTP, MCP) to request an enumeration.
type Analyzer interface {
	// Analyze enumerates every branch of the model and returns the exact expectations.
	Analyze(ctx context.Context, model domain.Model) (domain.Result, error)
}

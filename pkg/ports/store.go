package ports

import (
	"context"

	"github.com/aretw0/macexpect/pkg/domain"
)

// ResultStore caches computed results.
// Keys are model fingerprints, so a stored result never goes stale.
type ResultStore interface {
	// Save persists the result under key.
	Save(ctx context.Context, key string, result domain.Result) error

	// Load retrieves the result for key.
	// Returns domain.ErrResultNotFound if nothing is stored.
	Load(ctx context.Context, key string) (domain.Result, error)

	// Delete removes the result for key.
	Delete(ctx context.Context, key string) error

	// List returns the stored keys.
	List(ctx context.Context) ([]string, error)
}

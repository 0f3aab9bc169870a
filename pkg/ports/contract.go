package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	sample := func() domain.Result {
		return domain.Result{
			Model:           domain.DefaultModel(),
			ExpectedTime:    16418.0 / 729,
			ExpectedEnergy:  276485.0 / 729,
			ProbabilityMass: 1,
			TerminalStates:  31,
			ExpandedStates:  115,
			MaxElapsed:      56,
			Distribution:    map[int]float64{12: 1.0 / 6, 24: 34.0 / 81},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		want := sample()
		require.NoError(t, store.Save(ctx, key, want), "Save should not return error")

		got, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, want.Model, got.Model)
		assert.InDelta(t, want.ExpectedTime, got.ExpectedTime, 1e-12)
		assert.InDelta(t, want.ExpectedEnergy, got.ExpectedEnergy, 1e-12)
		assert.Equal(t, want.TerminalStates, got.TerminalStates)
		assert.Equal(t, want.MaxElapsed, got.MaxElapsed)
		assert.InDelta(t, want.Distribution[24], got.Distribution[24], 1e-12)
	})

	t.Run("Stored copy is isolated", func(t *testing.T) {
		res := sample()
		require.NoError(t, store.Save(ctx, key, res))
		res.Distribution[99] = 1

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.NotContains(t, got.Distribution, 99)

		got.Distribution[98] = 1
		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.NotContains(t, again.Distribution, 98)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample()))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, sample())
		_ = store.Save(ctx, id2, sample())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}

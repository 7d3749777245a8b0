package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Set and Get", func(t *testing.T) {
		result := &domain.Result{
			Input:    "2x^2+7x+3",
			Outcome:  domain.OutcomeFactored,
			Markup:   "<p>ok</p>",
			Factored: "2(x-6)(x-1)",
		}

		err := cache.Set(ctx, key, result)
		require.NoError(t, err, "Set should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, result.Input, loaded.Input)
		assert.Equal(t, result.Outcome, loaded.Outcome)
		assert.Equal(t, result.Markup, loaded.Markup)
		assert.Equal(t, result.Factored, loaded.Factored)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, key+"-missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, &domain.Result{Input: "a", Outcome: domain.OutcomeNonRealRoots}))
		require.NoError(t, cache.Set(ctx, key, &domain.Result{Input: "b", Outcome: domain.OutcomeMalformedInput}))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "b", loaded.Input)
		assert.Equal(t, domain.OutcomeMalformedInput, loaded.Outcome)
	})

	t.Run("Isolation", func(t *testing.T) {
		original := &domain.Result{Input: "x^2+4x+4", Markup: "before"}
		require.NoError(t, cache.Set(ctx, key, original))
		original.Markup = "mutated"

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "before", loaded.Markup)

		loaded.Markup = "mutated again"
		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "before", again.Markup)
	})
}

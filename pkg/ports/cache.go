package ports

import (
	"context"

	"github.com/aretw0/trinomial/pkg/domain"
)

// ResultCache memoizes rendered factorizations keyed by normalized input.
// Entries are derived data: losing them never changes what a caller sees.
type ResultCache interface {
	// Get returns the cached result for key.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, key string) (*domain.Result, error)

	// Set stores the result for key, replacing any previous entry.
	Set(ctx context.Context, key string, result *domain.Result) error
}

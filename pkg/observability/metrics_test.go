package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/adapters/memory"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_EngineHooks(t *testing.T) {
	m := observability.NewMetrics()
	eng := trinomial.New(
		trinomial.WithCache(memory.NewCache()),
		trinomial.WithLifecycleHooks(m.Hooks(nil)),
	)
	ctx := context.Background()

	for _, in := range []string{"x^2-5x+6", "x^2-5x+6", "x^2+1x+1", "3x+5"} {
		_, err := eng.Factor(ctx, in)
		require.NoError(t, err)
	}

	count, err := testutil.GatherAndCount(m.Registry(), "trinomial_factorizations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count) // one series per outcome

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "trinomial_cache_hits_total 1")
	assert.Contains(t, rec.Body.String(), `trinomial_factorizations_total{outcome="factored"} 2`)
}

func TestMetrics_Observe(t *testing.T) {
	m := observability.NewMetrics()
	m.Observe(&domain.FactorEvent{Outcome: domain.OutcomeFactored, Duration: time.Millisecond})
	m.Observe(&domain.FactorEvent{Outcome: domain.OutcomeFactored, Cached: true})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `trinomial_factorizations_total{outcome="factored"} 2`)
	assert.Contains(t, body, "trinomial_cache_hits_total 1")
	assert.Contains(t, body, "trinomial_factor_duration_seconds_count 2")
}

func TestMetrics_HooksChain(t *testing.T) {
	m := observability.NewMetrics()
	called := false
	next := domain.LifecycleHooks{OnFactor: func(ctx context.Context, e *domain.FactorEvent) { called = true }}

	hooks := m.Hooks(&next)
	hooks.OnFactor(context.Background(), &domain.FactorEvent{Outcome: domain.OutcomeNonRealRoots})
	assert.True(t, called)
}

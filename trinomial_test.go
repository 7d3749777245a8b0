package trinomial_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/adapters/memory"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/aretw0/trinomial/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor_Malformed(t *testing.T) {
	want := markup.Malformed(markup.FormatHTML)
	for _, in := range []string{"3x+5", "x^2+2x", "2.5x^2+3x+1", "", "hello", "x^2+x+1"} {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, trinomial.Factor(in))
		})
	}
}

func TestFactor_Monic(t *testing.T) {
	out := trinomial.Factor("x^2-5x+6")

	assert.Contains(t, out, `\(a = 1, \; b = -5, \; c = 6\)`)
	assert.Contains(t, out, `\( a \cdot c = 1 \times 6 = 6 \)`)
	assert.Contains(t, out, `= (-5)^2 - 4\cdot6 = 1 \)`)
	assert.Contains(t, out, `\( m = \frac{-5 + \sqrt{1}}{2} = -2.000 \)`)
	assert.Contains(t, out, `\( n = \frac{-5 - \sqrt{1}}{2} = -3.000 \)`)
	assert.Contains(t, out, `1\Bigl(x - (-2.000)\Bigr)\Bigl(x - (-3.000)\Bigr)`)
	for i := 1; i <= 6; i++ {
		assert.Contains(t, out, "<strong>Paso "+string(rune('0'+i))+":</strong>")
	}
}

func TestFactor_LeadingCoefficient(t *testing.T) {
	out := trinomial.Factor("2x^2+7x+3")

	assert.Contains(t, out, `El trinomio es: \( 2x^2 +7x +3 \).`)
	assert.Contains(t, out, `= 7^2 - 4\cdot6 = 25 \)`)
	assert.Contains(t, out, `= 6.000 \)`)
	assert.Contains(t, out, `= 1.000 \)`)
	assert.Contains(t, out, `2\Bigl(x - (6.000)\Bigr)\Bigl(x - (1.000)\Bigr)`)
}

func TestFactor_SumMatchesLinearCoefficient(t *testing.T) {
	out := trinomial.Factor("6x^2-31x+40")

	assert.Contains(t, out, `\( a \cdot c = 6 \times 40 = 240 \)`)
	assert.Contains(t, out, `= (-31)^2 - 4\cdot240 = 1 \)`)
	assert.Contains(t, out, `m + n = -15.000 -16.000 = -31`)
	assert.Contains(t, out, `m \cdot n = -15.000 \times (-16.000) = 240`)
}

func TestFactor_NonRealRoots(t *testing.T) {
	out := trinomial.Factor("x^2+1x+1")

	assert.Contains(t, out, "= -3 \\)")
	assert.Contains(t, out, "no es factorizable en \\(\\mathbb{R}\\)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</p>"))
	for _, missing := range []string{"Paso 4", "Paso 5", "Paso 6", "Verificamos"} {
		assert.NotContains(t, out, missing)
	}
}

func TestFactor_Idempotent(t *testing.T) {
	for _, in := range []string{"x^2-5x+6", "x^2+1x+1", "oops", "x^2+3x+1"} {
		assert.Equal(t, trinomial.Factor(in), trinomial.Factor(in), in)
	}
}

func TestRender_Markdown(t *testing.T) {
	res := trinomial.Render("2x^2+7x+3", markup.FormatMarkdown)
	assert.Equal(t, domain.OutcomeFactored, res.Outcome)
	assert.Equal(t, "2(x-6)(x-1)", res.Factored)
	assert.Contains(t, res.Markup, "**Paso 6:**")
	assert.NotContains(t, res.Markup, "<p>")

	bad := trinomial.Render("3x+5", markup.FormatMarkdown)
	assert.Equal(t, domain.OutcomeMalformedInput, bad.Outcome)
	assert.Equal(t, markup.Malformed(markup.FormatMarkdown), bad.Markup)
}

func TestExplain_Malformed(t *testing.T) {
	_, err := trinomial.Explain("x^2+2x")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestEngine_Hooks(t *testing.T) {
	var events []*domain.FactorEvent
	eng := trinomial.New(
		trinomial.WithCache(memory.NewCache()),
		trinomial.WithLifecycleHooks(domain.LifecycleHooks{
			OnFactor: func(ctx context.Context, e *domain.FactorEvent) {
				events = append(events, e)
			},
		}),
	)
	ctx := context.Background()

	_, err := eng.Factor(ctx, "x^2+1x+1")
	require.NoError(t, err)
	_, err = eng.Factor(ctx, "x^2+1x+1")
	require.NoError(t, err)
	_, err = eng.Factor(ctx, "nope")
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, domain.EventFactor, events[0].Type)
	assert.Equal(t, domain.OutcomeNonRealRoots, events[0].Outcome)
	assert.Equal(t, domain.EventCacheHit, events[1].Type)
	assert.True(t, events[1].Cached)
	assert.Equal(t, domain.OutcomeMalformedInput, events[2].Outcome)
}

// failingCache always errors, standing in for an unreachable backend.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (*domain.Result, error) {
	return nil, errors.New("connection refused")
}

func (failingCache) Set(ctx context.Context, key string, r *domain.Result) error {
	return errors.New("connection refused")
}

func TestEngine_CacheFailureIsNotFatal(t *testing.T) {
	eng := trinomial.New(trinomial.WithCache(failingCache{}))

	res, err := eng.Factor(context.Background(), "2x^2+7x+3")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, trinomial.Factor("2x^2+7x+3"), res.Markup)
}

func TestEngine_InputTooLarge(t *testing.T) {
	eng := trinomial.New(trinomial.WithMaxInputSize(8))

	_, err := eng.Factor(context.Background(), "x^2-5x+6 ")
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)

	res, err := eng.Factor(context.Background(), "x^2-5x+6")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFactored, res.Outcome)
}

func TestEngine_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := trinomial.New().Factor(ctx, "x^2-5x+6")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_FormatsCachedSeparately(t *testing.T) {
	cache := memory.NewCache()
	eng := trinomial.New(trinomial.WithCache(cache), trinomial.WithFormat(markup.FormatMarkdown))
	ctx := context.Background()

	md, err := eng.Factor(ctx, "x^2+4x+4")
	require.NoError(t, err)
	html, err := eng.FactorAs(ctx, "x^2+4x+4", markup.FormatHTML)
	require.NoError(t, err)

	assert.False(t, html.Cached)
	assert.NotEqual(t, md.Markup, html.Markup)
	assert.Equal(t, 2, cache.Len())
}

func TestEngine_MatchesFactorOnControlCharacters(t *testing.T) {
	eng := trinomial.New(trinomial.WithCache(memory.NewCache()))
	ctx := context.Background()

	for _, in := range []string{"x^2-5x\x01+6", "\x1b[31mx^2-5x+6", "x^2-5x+6\x00", "x^2\x7f-5x+6"} {
		t.Run(strings.ToValidUTF8(in, "?"), func(t *testing.T) {
			assert.Equal(t, markup.Malformed(markup.FormatHTML), trinomial.Factor(in))

			for range 2 {
				res, err := eng.Factor(ctx, in)
				require.NoError(t, err)
				assert.Equal(t, domain.OutcomeMalformedInput, res.Outcome)
				assert.Equal(t, trinomial.Factor(in), res.Markup)
				assert.Equal(t, in, res.Input)
			}
		})
	}
}

func TestFactor_ByteOrderMark(t *testing.T) {
	assert.Equal(t, trinomial.Factor("x^2-5x+6"), trinomial.Factor("\uFEFFx^2-5x+6"))
	assert.Equal(t, markup.Malformed(markup.FormatHTML), trinomial.Factor("x^2\u0085-5x+6"))
}

func TestFactor_DiscriminantOverflow(t *testing.T) {
	assert.Equal(t, markup.Malformed(markup.FormatHTML), trinomial.Factor("x^2+4000000000x+1"))

	res := trinomial.Render("x^2+3037000499x+1", markup.FormatHTML)
	assert.Equal(t, domain.OutcomeFactored, res.Outcome)
}

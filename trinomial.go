package trinomial

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/trinomial/internal/compiler"
	"github.com/aretw0/trinomial/internal/runtime"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/aretw0/trinomial/pkg/ports"
	"github.com/aretw0/trinomial/pkg/runner"
)

// Factor returns the HTML explanation for input, or the malformed-input message.
// It never fails and keeps no state between calls.
func Factor(input string) string {
	return render(input, markup.FormatHTML).Markup
}

// Explain returns the structured explanation for input.
// The only error is domain.ErrMalformedInput.
func Explain(input string) (*domain.Explanation, error) {
	return runtime.NewEngine().Explain(input)
}

// Render is Factor with a selectable output format and the outcome attached.
func Render(input string, format markup.Format) *domain.Result {
	return render(input, format)
}

func render(input string, format markup.Format) *domain.Result {
	res := &domain.Result{Input: input}

	exp, err := runtime.NewEngine().Explain(input)
	if err != nil {
		res.Outcome = domain.OutcomeMalformedInput
		res.Markup = markup.Malformed(format)
		return res
	}

	res.Outcome = exp.Outcome
	res.Markup = markup.Render(format, exp)
	if exp.Factorization != nil {
		res.Factored = exp.Factorization.String()
	}
	return res
}

// Engine is the high-level entry point for hosts (CLI, HTTP, MCP).
// It wraps the pure core with input sanitation, an optional result cache,
// lifecycle hooks and logging.
type Engine struct {
	cache        ports.ResultCache
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	format       markup.Format
	maxInputSize int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCache memoizes results. Cache failures are logged and never surface to callers.
func WithCache(c ports.ResultCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithFormat selects the default output format (HTML unless set).
func WithFormat(f markup.Format) Option {
	return func(e *Engine) {
		e.format = f
	}
}

// WithMaxInputSize caps the accepted input in bytes.
// Zero keeps the runner default (see runner.EnvMaxInputSize).
func WithMaxInputSize(n int) Option {
	return func(e *Engine) {
		e.maxInputSize = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		format: markup.FormatHTML,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return eng
}

// Format reports the engine's default output format.
func (e *Engine) Format() markup.Format {
	return e.format
}

// Factor explains input in the engine's default format.
func (e *Engine) Factor(ctx context.Context, input string) (*domain.Result, error) {
	return e.FactorAs(ctx, input, e.format)
}

// FactorAs explains input in the given format.
// Errors are limited to rejected input (size, UTF-8) and context cancellation;
// a malformed trinomial is a successful call with OutcomeMalformedInput.
func (e *Engine) FactorAs(ctx context.Context, input string, format markup.Format) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	if err := runner.ValidateInput(input, e.maxInputSize); err != nil {
		e.logger.Warn("Input rejected", "error", err, "size", len(input))
		return nil, fmt.Errorf("input rejected: %w", err)
	}

	key := cacheKey(format, input)
	if res := e.lookup(ctx, key); res != nil {
		res.Input = input
		e.emit(ctx, res, time.Since(start))
		return res, nil
	}

	// The raw text goes to the parser so both entry points share one rejection set.
	res := render(input, format)
	e.logger.Debug("Factorization computed", "input", runner.LogSafe(input), "outcome", res.Outcome)

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, res); err != nil {
			e.logger.Warn("Cache store failed", "error", err, "key", runner.LogSafe(key))
		}
	}

	e.emit(ctx, res, time.Since(start))
	return res, nil
}

func (e *Engine) lookup(ctx context.Context, key string) *domain.Result {
	if e.cache == nil {
		return nil
	}
	res, err := e.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			e.logger.Warn("Cache lookup failed", "error", err, "key", runner.LogSafe(key))
		}
		return nil
	}
	res.Cached = true
	e.logger.Debug("Cache hit", "key", runner.LogSafe(key))
	return res
}

func (e *Engine) emit(ctx context.Context, res *domain.Result, d time.Duration) {
	if e.hooks.OnFactor == nil {
		return
	}
	typ := domain.EventFactor
	if res.Cached {
		typ = domain.EventCacheHit
	}
	e.hooks.OnFactor(ctx, &domain.FactorEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Input:     res.Input,
		Outcome:   res.Outcome,
		Cached:    res.Cached,
		Duration:  d,
	})
}

// cacheKey ignores white space so "x^2 - 5x + 6" and "x^2-5x+6" share an entry.
func cacheKey(format markup.Format, input string) string {
	return string(format) + ":" + compiler.Normalize(input)
}

package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/trinomial/pkg/domain"
)

// Factorizer is the engine surface the runner drives.
type Factorizer interface {
	Factor(ctx context.Context, input string) (*domain.Result, error)
}

// ContentRenderer transforms markup before it is written (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// Runner reads trinomials line by line and writes each explanation.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Logger   *slog.Logger
	Renderer ContentRenderer
	Prompt   string
	// JSON, when set, replaces markup output with JSON Lines.
	JSON *JSONHandler

	jsonLines bool
}

// NewRunner creates a Runner on Stdin/Stdout; options override the defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.jsonLines && r.JSON == nil {
		r.JSON = NewJSONHandler(r.Output)
	}
	return r
}

// Run loops until EOF, an "exit"/"quit" line or context cancellation.
// Blank lines are skipped. Rejected input is reported and the loop continues.
// It returns the number of trinomials processed.
func (r *Runner) Run(ctx context.Context, engine Factorizer) (int, error) {
	scanner := bufio.NewScanner(r.Input)
	count := 0

	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if r.Prompt != "" && r.JSON == nil {
			fmt.Fprint(r.Output, r.Prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return count, fmt.Errorf("failed to read input: %w", err)
			}
			return count, nil
		}

		line := strings.TrimSpace(scanner.Text())
		if r.JSON != nil {
			line = r.JSON.Decode(line)
		}
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return count, nil
		}

		if err := r.Once(ctx, engine, line); err != nil {
			if ctx.Err() != nil {
				return count, ctx.Err()
			}
			if r.JSON == nil {
				fmt.Fprintf(r.Output, "Error: %v\n", err)
			}
			continue
		}
		count++
	}
}

// Once factors a single input and writes the (optionally rendered) markup.
func (r *Runner) Once(ctx context.Context, engine Factorizer, input string) error {
	res, err := engine.Factor(ctx, input)
	if err != nil {
		r.Logger.Warn("Factorization rejected", "error", err)
		if r.JSON != nil {
			if werr := r.JSON.EmitError(input, err); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
		}
		return err
	}

	if r.JSON != nil {
		if err := r.JSON.Emit(res); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	out := res.Markup
	if r.Renderer != nil {
		rendered, err := r.Renderer(out)
		if err != nil {
			// Raw markup stays readable when rendering fails.
			r.Logger.Warn("Render failed, writing raw markup", "error", err)
		} else {
			out = rendered
		}
	}

	if _, err := io.WriteString(r.Output, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(r.Output)
	}
	r.Logger.Debug("Factorization written", "outcome", res.Outcome, "cached", res.Cached)
	return nil
}

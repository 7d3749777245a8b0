package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInput sets the reader the runner consumes, one trinomial per line.
func WithInput(r io.Reader) Option {
	return func(rn *Runner) {
		rn.Input = r
	}
}

// WithOutput sets where rendered explanations are written.
func WithOutput(w io.Writer) Option {
	return func(rn *Runner) {
		rn.Output = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rn *Runner) {
		rn.Logger = logger
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown).
func WithRenderer(renderer ContentRenderer) Option {
	return func(rn *Runner) {
		rn.Renderer = renderer
	}
}

// WithPrompt sets the text printed before each read. Empty disables prompting.
func WithPrompt(prompt string) Option {
	return func(rn *Runner) {
		rn.Prompt = prompt
	}
}

// WithJSON switches to JSON-Lines: input lines may be JSON strings and each
// result (or rejection) is written as one JSON object. Prompts are suppressed.
func WithJSON() Option {
	return func(rn *Runner) {
		rn.jsonLines = true
	}
}

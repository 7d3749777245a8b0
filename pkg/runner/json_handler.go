package runner

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/trinomial/pkg/domain"
)

// JSONHandler implements structured JSON-Lines communication: one result
// object per processed input.
type JSONHandler struct {
	Encoder *json.Encoder
}

// jsonError is emitted in place of a result when the input is rejected.
type jsonError struct {
	Input string `json:"input"`
	Error string `json:"error"`
}

// NewJSONHandler creates a handler writing to w (Stdout when nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONHandler{Encoder: enc}
}

// Decode accepts either a JSON string ("x^2-5x+6") or raw text.
func (h *JSONHandler) Decode(line string) string {
	line = strings.TrimSpace(line)

	var val string
	if err := json.Unmarshal([]byte(line), &val); err == nil {
		return val
	}

	// Fallback: return raw text (e.g. if they just sent plain text)
	return line
}

// Emit writes res as a single JSON line.
func (h *JSONHandler) Emit(res *domain.Result) error {
	return h.Encoder.Encode(res)
}

// EmitError writes a rejection as a single JSON line.
func (h *JSONHandler) EmitError(input string, err error) error {
	return h.Encoder.Encode(jsonError{Input: input, Error: err.Error()})
}

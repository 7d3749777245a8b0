package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "TRINOMIAL_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// ValidateInput rejects input larger than limit bytes or not valid UTF-8.
// The text is not altered: deciding which characters form a trinomial is the
// parser's job. A non-positive limit falls back to MaxInputSize.
func ValidateInput(input string, limit int) error {
	if limit <= 0 {
		limit = MaxInputSize()
	}
	if len(input) > limit {
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return ErrInvalidUTF8
	}
	return nil
}

// MaxInputSize returns the limit from EnvMaxInputSize, or DefaultMaxInputSize
// when the variable is unset or not a positive integer.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

// LogSafe drops control characters (ESC, NUL, BEL, ...) so user text can be
// echoed into logs and terminals. Newline, tab and carriage return are kept.
func LogSafe(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return -1
		}
		return r
	}, input)
}

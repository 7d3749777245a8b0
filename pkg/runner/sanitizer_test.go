package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", DefaultMaxInputSize - 1, false},
		{"Exact Limit", DefaultMaxInputSize, false},
		{"Over Limit", DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(strings.Repeat("a", tt.size), 0)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInput_ExplicitLimit(t *testing.T) {
	assert.ErrorIs(t, ValidateInput("x^2-5x+6", 4), ErrInputTooLarge)
	assert.NoError(t, ValidateInput("x^2-5x+6", 8))
}

func TestValidateInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	assert.Equal(t, 10, MaxInputSize())
	assert.Error(t, ValidateInput("12345678901", 0))
	assert.NoError(t, ValidateInput("12345", 0))
}

func TestMaxInputSize_IgnoresBadEnv(t *testing.T) {
	for _, v := range []string{"abc", "0", "-5"} {
		t.Setenv(EnvMaxInputSize, v)
		assert.Equal(t, DefaultMaxInputSize, MaxInputSize(), v)
	}
}

func TestValidateInput_InvalidUTF8(t *testing.T) {
	err := ValidateInput("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98", 0)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestValidateInput_LeavesControlCharactersToParser(t *testing.T) {
	// Control characters are not a transport problem; the grammar rejects them.
	assert.NoError(t, ValidateInput("x^2-5x\x01+6", 0))
	assert.NoError(t, ValidateInput("\x1b[31mx^2-5x+6", 0))
}

func TestLogSafe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "x^2-5x+6", "x^2-5x+6"},
		{"Safe Controls", "2x^2\t+ 7x\r\n+3", "2x^2\t+ 7x\r\n+3"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogSafe(tt.input))
		})
	}
}

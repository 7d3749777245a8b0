package markup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSign(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{7, "+7"},
		{-5, "-5"},
		{0, "+0"},
		{math.MaxInt64, "+9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSign(tt.in))
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "3.000", Fixed(3))
	assert.Equal(t, "-15.000", Fixed(-15))
	assert.Equal(t, "2.618", Fixed(2.618033988749895))
	assert.Equal(t, "0.000", Fixed(math.Copysign(0, -1)))
	assert.Equal(t, "0.000", Fixed(-0.0001))
}

func TestSignedFixed(t *testing.T) {
	assert.Equal(t, "+1.000", SignedFixed(1))
	assert.Equal(t, "-3.000", SignedFixed(-3))
	assert.Equal(t, "+0.000", SignedFixed(0))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "5", Short(5))
	assert.Equal(t, "-5", Short(-5.0000000001))
	assert.Equal(t, "1.5", Short(1.5))
	assert.Equal(t, "0", Short(-0.0001))
}

func TestParen(t *testing.T) {
	assert.Equal(t, "6", Paren(6))
	assert.Equal(t, "(-5)", Paren(-5))
}

package compiler

import (
	"testing"

	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Coefficients
	}{
		{"Monic", "x^2-5x+6", domain.Coefficients{A: 1, B: -5, C: 6}},
		{"Leading Coefficient", "2x^2+7x+3", domain.Coefficients{A: 2, B: 7, C: 3}},
		{"Large Values", "6x^2-31x+40", domain.Coefficients{A: 6, B: -31, C: 40}},
		{"Explicit Plus", "+x^2+1x+1", domain.Coefficients{A: 1, B: 1, C: 1}},
		{"Bare Minus", "-x^2+3x-2", domain.Coefficients{A: -1, B: 3, C: -2}},
		{"Signed Leading", "-4x^2+0x-9", domain.Coefficients{A: -4, B: 0, C: -9}},
		{"Whitespace Everywhere", "  2 x ^ 2 +\t7x\n+ 3 ", domain.Coefficients{A: 2, B: 7, C: 3}},
		{"Unicode Space", "x^2 -5x+6", domain.Coefficients{A: 1, B: -5, C: 6}},
		{"Byte Order Mark", "\uFEFFx^2-5x+6", domain.Coefficients{A: 1, B: -5, C: 6}},
		{"Ideographic Space", "x^2\u3000-5x+6", domain.Coefficients{A: 1, B: -5, C: 6}},
		{"Largest Discriminant", "x^2+3037000499x+1", domain.Coefficients{A: 1, B: 3037000499, C: 1}},
		{"Leading Zeros", "007x^2+07x+0", domain.Coefficients{A: 7, B: 7, C: 0}},
		{"Zero Leading", "0x^2+2x+1", domain.Coefficients{A: 0, B: 2, C: 1}},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Parse_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"3x+5",
		"x^2+2x",
		"2.5x^2+3x+1",
		"x^2+2.5x+1",
		"y^2+2y+1",
		"X^2+2x+1",
		"2x+x^2+1",
		"x^2+x+1",  // linear coefficient needs digits
		"x^2 5x+6", // missing sign once spaces collapse
		"x²-5x+6",  // superscript is not the ^2 marker
		"x^2-5x+6=0",
		"x^2-5x+99999999999999999999",
		"x^2+4000000000x+1",           // b*b overflows
		"3000000000x^2+1x+4000000000", // a*c overflows
		"x^2\u0085-5x+6",              // NEL is not white space here
		"x^2-5x\x01+6",
	}

	p := NewParser()
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := p.Parse(in)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "x^2-5x+6", Normalize(" x ^2 -\t5x\r\n+6 "))
	assert.Equal(t, "", Normalize(" \t\n"))
	assert.Equal(t, "x^2", Normalize("\uFEFFx^2\u00a0\u2028"))
	assert.Equal(t, "x\u0085", Normalize("x\u0085"))
}

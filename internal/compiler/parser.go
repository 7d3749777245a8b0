package compiler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/trinomial/pkg/domain"
)

// trinomialPattern accepts [sign][digits]x^2 (sign)(digits)x (sign)(digits) and nothing else.
var trinomialPattern = regexp.MustCompile(`^([+-]?\d*)x\^2([+-]\d+)x([+-]\d+)$`)

// Parser is responsible for converting raw text into trinomial coefficients.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Normalize removes every white space rune from the input.
func Normalize(input string) string {
	return strings.Map(func(r rune) rune {
		if isBlank(r) {
			return -1
		}
		return r
	}, input)
}

// isBlank matches the ECMAScript white space and line terminator set:
// unicode.IsSpace plus the byte order mark, minus NEL (U+0085).
func isBlank(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Parse takes the raw text and extracts a, b and c.
// Any mismatch, including numerals or a discriminant that overflow int64,
// yields domain.ErrMalformedInput.
func (p *Parser) Parse(input string) (domain.Coefficients, error) {
	match := trinomialPattern.FindStringSubmatch(Normalize(input))
	if match == nil {
		return domain.Coefficients{}, domain.ErrMalformedInput
	}

	a, err := leading(match[1])
	if err != nil {
		return domain.Coefficients{}, err
	}
	b, err := integer(match[2])
	if err != nil {
		return domain.Coefficients{}, err
	}
	c, err := integer(match[3])
	if err != nil {
		return domain.Coefficients{}, err
	}

	coeffs := domain.Coefficients{A: a, B: b, C: c}
	if !coeffs.Representable() {
		return domain.Coefficients{}, fmt.Errorf("%w: discriminant of %s overflows int64", domain.ErrMalformedInput, coeffs.Polynomial())
	}
	return coeffs, nil
}

// leading resolves the x^2 coefficient: empty or "+" is 1, "-" is -1.
func leading(token string) (int64, error) {
	switch token {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return integer(token)
}

func integer(token string) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: coefficient %q: %v", domain.ErrMalformedInput, token, err)
	}
	return v, nil
}

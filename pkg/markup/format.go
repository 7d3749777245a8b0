package markup

import (
	"math"
	"strconv"
	"strings"
)

// FormatSign returns n with an explicit sign: 7 -> "+7", -5 -> "-5", 0 -> "+0".
func FormatSign(n int64) string {
	if n >= 0 {
		return "+" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Fixed formats v with exactly three decimals. Negative zero prints as "0.000".
func Fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// SignedFixed is Fixed with an explicit leading sign.
func SignedFixed(v float64) string {
	s := Fixed(v)
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

// Short rounds v to three decimals and drops trailing zeros: 5 -> "5", 1.5 -> "1.5".
func Short(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Paren wraps negative numbers so they read unambiguously in formulas: -5 -> "(-5)".
func Paren(n int64) string {
	if n < 0 {
		return "(" + strconv.FormatInt(n, 10) + ")"
	}
	return strconv.FormatInt(n, 10)
}

package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Coefficients holds the integers of a trinomial ax^2+bx+c.
type Coefficients struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
	C int64 `json:"c"`
}

// AC returns the product a*c used by the ac-method.
func (c Coefficients) AC() int64 {
	return c.A * c.C
}

// Discriminant returns b^2 - 4ac.
func (c Coefficients) Discriminant() int64 {
	return c.B*c.B - 4*c.AC()
}

// Representable reports whether ac and b^2-4ac fit in int64, so AC and
// Discriminant are exact.
func (c Coefficients) Representable() bool {
	ac := new(big.Int).Mul(big.NewInt(c.A), big.NewInt(c.C))
	if !ac.IsInt64() {
		return false
	}
	d := new(big.Int).Mul(big.NewInt(c.B), big.NewInt(c.B))
	d.Sub(d, new(big.Int).Lsh(ac, 2))
	return d.IsInt64()
}

// Polynomial returns the compact textual form, e.g. "2x^2+7x+3".
func (c Coefficients) Polynomial() string {
	lead := ""
	switch c.A {
	case 1:
	case -1:
		lead = "-"
	default:
		lead = fmt.Sprintf("%d", c.A)
	}
	return fmt.Sprintf("%sx^2%+dx%+d", lead, c.B, c.C)
}

// Roots are the two solutions of the auxiliary equation x^2 - bx + ac = 0.
// M takes the positive square root, N the negative one.
type Roots struct {
	M float64 `json:"m"`
	N float64 `json:"n"`
}

// NewRoots computes (b ± √D) / 2. The second return value is false when D < 0.
func NewRoots(c Coefficients) (Roots, bool) {
	d := c.Discriminant()
	if d < 0 {
		return Roots{}, false
	}
	sqrtD := math.Sqrt(float64(d))
	b := float64(c.B)
	return Roots{
		M: (b + sqrtD) / 2,
		N: (b - sqrtD) / 2,
	}, true
}

// Sum returns m + n, which equals b.
func (r Roots) Sum() float64 { return r.M + r.N }

// Product returns m * n, which equals ac.
func (r Roots) Product() float64 { return r.M * r.N }

// Factorization is the closed form a(x - m)(x - n).
type Factorization struct {
	A     int64 `json:"a"`
	Roots Roots `json:"roots"`
}

// String renders the factorization with simplified signs and at most three
// decimals, e.g. "2(x-6)(x-1)" or "1(x+2)(x+3)".
func (f Factorization) String() string {
	return fmt.Sprintf("%d%s%s", f.A, binomial(f.Roots.M), binomial(f.Roots.N))
}

func binomial(root float64) string {
	v := math.Round(root*1000) / 1000
	if v == 0 {
		return "(x)"
	}
	sign := "-"
	if v < 0 {
		sign = "+"
		v = -v
	}
	return fmt.Sprintf("(x%s%s)", sign, trimFloat(v))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

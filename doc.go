/*
Package trinomial explains the factorization of quadratic trinomials step by step.

Given text such as "2x^2+7x+3" it extracts the coefficients a, b and c, forms the
auxiliary equation x^2 - bx + ac = 0, solves it with the quadratic formula and
narrates the ac-method: the middle term is split as mx + nx with m + n = b and
m*n = ac, grouped, and the trinomial is finally written as a(x - m)(x - n).
The explanation is returned as HTML with MathJax delimiters (or Markdown for
terminals); typesetting is left to the host.

# Key Features

  - Pure core: Factor has no side effects and returns the same markup for the same input.
  - Fixed grammar: only [a]x^2(+|-)bx(+|-)c is accepted; anything else yields a single message.
  - Hexagonal Architecture: caching, metrics and transports are adapters around the core.

# Usage

The simplest entry point is the pure function:

	markup := trinomial.Factor("x^2-5x+6")

Services that want caching, hooks or logging wrap it in an Engine:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/trinomial"
		"github.com/aretw0/trinomial/pkg/adapters/memory"
	)

	func main() {
		eng := trinomial.New(trinomial.WithCache(memory.NewCache()))

		res, err := eng.Factor(context.Background(), "2x^2+7x+3")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome, res.Factored) // factored 2(x-6)(x-1)
	}
*/
package trinomial

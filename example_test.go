package trinomial_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/adapters/memory"
)

func ExampleExplain() {
	exp, err := trinomial.Explain("2x^2+7x+3")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(exp.Coefficients.A, exp.Coefficients.B, exp.Coefficients.C)
	fmt.Println(exp.Coefficients.AC(), exp.Discriminant)
	fmt.Println(exp.Roots.M, exp.Roots.N)
	fmt.Println(exp.Factorization)
	// Output:
	// 2 7 3
	// 6 25
	// 6 1
	// 2(x-6)(x-1)
}

// ExampleEngine_Factor shows that white space does not defeat the result cache.
func ExampleEngine_Factor() {
	eng := trinomial.New(trinomial.WithCache(memory.NewCache()))
	ctx := context.Background()

	first, err := eng.Factor(ctx, "x^2-5x+6")
	if err != nil {
		log.Fatal(err)
	}
	second, err := eng.Factor(ctx, "x^2 - 5x + 6")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(first.Outcome, first.Factored, first.Cached)
	fmt.Println(second.Outcome, second.Factored, second.Cached)
	// Output:
	// factored 1(x+2)(x+3) false
	// factored 1(x+2)(x+3) true
}

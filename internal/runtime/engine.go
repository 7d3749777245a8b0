package runtime

import (
	"github.com/aretw0/trinomial/internal/compiler"
	"github.com/aretw0/trinomial/pkg/domain"
)

// Engine parses trinomials and builds their step-by-step explanation.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	parser *compiler.Parser
}

// NewEngine creates a new engine with dependencies.
func NewEngine() *Engine {
	return &Engine{
		parser: compiler.NewParser(),
	}
}

// Explain parses the input and returns the full explanation.
// It fails only with domain.ErrMalformedInput.
func (e *Engine) Explain(input string) (*domain.Explanation, error) {
	coeffs, err := e.parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return Explain(coeffs), nil
}

// Explain builds the steps for already parsed coefficients.
// Steps 4 to 6 are only present when the discriminant is non-negative.
func Explain(c domain.Coefficients) *domain.Explanation {
	exp := &domain.Explanation{
		Coefficients: c,
		Discriminant: c.Discriminant(),
		Outcome:      domain.OutcomeNonRealRoots,
	}

	identify := identifyStep(c)
	product := productStep(c)
	auxiliary := auxiliaryStep(c)

	roots, ok := domain.NewRoots(c)
	if !ok {
		auxiliary.Blocks = append(auxiliary.Blocks, nonRealNotice())
		exp.Steps = []domain.Step{identify, product, auxiliary}
		return exp
	}

	auxiliary.Blocks = append(auxiliary.Blocks, rootBlocks(c, roots)...)
	exp.Roots = &roots
	exp.Factorization = &domain.Factorization{A: c.A, Roots: roots}
	exp.Outcome = domain.OutcomeFactored
	exp.Steps = []domain.Step{
		identify,
		product,
		auxiliary,
		rewriteStep(c, roots),
		groupingStep(c, roots),
		closedFormStep(c, roots),
	}
	return exp
}

package runtime

import (
	"fmt"
	"strconv"

	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/markup"
)

func identifyStep(c domain.Coefficients) domain.Step {
	lead := ""
	if c.A != 1 {
		lead = strconv.FormatInt(c.A, 10)
	}
	return domain.Step{
		Number: 1,
		Title:  "Identificar los coeficientes",
		Blocks: []domain.Paragraph{{
			fmt.Sprintf(`El trinomio es: \( %sx^2 %sx %s \).`, lead, markup.FormatSign(c.B), markup.FormatSign(c.C)),
			fmt.Sprintf(`Se tiene: \(a = %d, \; b = %d, \; c = %d\).`, c.A, c.B, c.C),
		}},
	}
}

func productStep(c domain.Coefficients) domain.Step {
	return domain.Step{
		Number: 2,
		Title:  `Calcular \(a \cdot c\)`,
		Blocks: []domain.Paragraph{{
			fmt.Sprintf(`\( a \cdot c = %d \times %s = %d \).`, c.A, markup.Paren(c.C), c.AC()),
		}},
	}
}

func auxiliaryStep(c domain.Coefficients) domain.Step {
	return domain.Step{
		Number: 3,
		Title:  "Aplicar la fórmula cuadrática a la ecuación auxiliar",
		Blocks: []domain.Paragraph{
			{fmt.Sprintf(`Consideramos la ecuación: \( x^2 - (%d)x + %s = 0 \).`, c.B, markup.Paren(c.AC()))},
			{fmt.Sprintf(`El discriminante es: \( D = b^2 - 4ac = %s^2 - 4\cdot%s = %d \).`,
				markup.Paren(c.B), markup.Paren(c.AC()), c.Discriminant())},
		},
	}
}

func nonRealNotice() domain.Paragraph {
	return domain.Paragraph{
		`El discriminante es negativo, por lo que las raíces son complejas y el trinomio no es factorizable en \(\mathbb{R}\).`,
	}
}

func rootBlocks(c domain.Coefficients, r domain.Roots) []domain.Paragraph {
	m, n := markup.Fixed(r.M), markup.Fixed(r.N)
	d := c.Discriminant()
	return []domain.Paragraph{
		{`Aplicando la fórmula: \( x = \frac{b \pm \sqrt{D}}{2} \), se obtiene:`},
		{fmt.Sprintf(`\( m = \frac{%d + \sqrt{%d}}{2} = %s \)`, c.B, d, m)},
		{fmt.Sprintf(`\( n = \frac{%d - \sqrt{%d}}{2} = %s \)`, c.B, d, n)},
		{fmt.Sprintf(`Verificamos: \( m + n = %s %s = %s \) y \( m \cdot n = %s \times %s = %s \).`,
			m, markup.SignedFixed(r.N), markup.Short(r.Sum()),
			m, parenFixed(r.N), markup.Short(r.Product()))},
	}
}

func rewriteStep(c domain.Coefficients, r domain.Roots) domain.Step {
	m, n := markup.Fixed(r.M), markup.SignedFixed(r.N)
	return domain.Step{
		Number: 4,
		Title:  "Reescribir el término central",
		Blocks: []domain.Paragraph{
			{fmt.Sprintf(`Reescribimos \( bx = %dx \) como \( %sx %sx \).`, c.B, m, n)},
			{fmt.Sprintf(`Entonces, \( ax^2+bx+c = ax^2 %sx %sx + c \).`, markup.SignedFixed(r.M), n)},
		},
	}
}

// groupingStep narrates the grouping. It illustrates the usual common factor
// extraction and does not claim the two groups share it.
func groupingStep(c domain.Coefficients, r domain.Roots) domain.Step {
	m, n := markup.SignedFixed(r.M), markup.Fixed(r.N)
	return domain.Step{
		Number: 5,
		Title:  "Factorizar por agrupación",
		Blocks: []domain.Paragraph{
			{
				"Agrupamos los términos:",
				fmt.Sprintf(`\( (ax^2 %sx) + (%sx %s) \).`, m, n, markup.FormatSign(c.C)),
			},
			{fmt.Sprintf(`Extrayendo un factor común de cada grupo: \( x(%dx %s) + 1(%sx %s) \).`,
				c.A, m, n, markup.FormatSign(c.C))},
			{"Aplicando factorización por grupos se obtiene (asumiendo que se halla el factor común adecuado):"},
		},
	}
}

func closedFormStep(c domain.Coefficients, r domain.Roots) domain.Step {
	return domain.Step{
		Number: 6,
		Title:  "Escribir la factorización final",
		Blocks: []domain.Paragraph{
			{"La factorización final del trinomio es:"},
			{`\[ ax^2+bx+c = a\Bigl(x - \Bigl(\frac{b+\sqrt{b^2-4ac}}{2}\Bigr)\Bigr)\Bigl(x - \Bigl(\frac{b-\sqrt{b^2-4ac}}{2}\Bigr)\Bigr). \]`},
			{fmt.Sprintf(`En nuestro ejemplo, con \(a = %d\):`, c.A)},
			{fmt.Sprintf(`\[ %dx^2+(%d)x%s = %d\Bigl(x - (%s)\Bigr)\Bigl(x - (%s)\Bigr). \]`,
				c.A, c.B, markup.FormatSign(c.C), c.A, markup.Fixed(r.M), markup.Fixed(r.N))},
		},
	}
}

func parenFixed(v float64) string {
	s := markup.Fixed(v)
	if v < 0 && s != "0.000" {
		return "(" + s + ")"
	}
	return s
}

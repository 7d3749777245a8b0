package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/trinomial/pkg/domain"
)

// Format selects the output dialect.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a user supplied name to a Format. Empty means HTML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (supported: html, markdown)", name)
}

// Render dispatches on f. Unknown formats fall back to HTML.
func Render(f Format, e *domain.Explanation) string {
	if f == FormatMarkdown {
		return Markdown(e)
	}
	return HTML(e)
}

// Malformed returns the message shown when the input is not a trinomial.
func Malformed(f Format) string {
	if f == FormatMarkdown {
		return "**Error:** La expresión debe tener la forma `ax^2+bx+c`.  \n" +
			"Ejemplos: `2x^2+7x+3` o `x^2-5x+6`.\n"
	}
	return "<p>Error: La expresión debe tener la forma ax^2+bx+c.<br>\n" +
		`Ejemplos: "2x^2+7x+3" o "x^2-5x+6".</p>`
}

// HTML renders every step as paragraphs, keeping the \( \) and \[ \] math
// delimiters for a typesetter to pick up.
func HTML(e *domain.Explanation) string {
	var b strings.Builder
	for _, step := range e.Steps {
		fmt.Fprintf(&b, "<p><strong>Paso %d:</strong> %s</p>\n", step.Number, step.Title)
		for _, p := range step.Blocks {
			b.WriteString("<p>")
			b.WriteString(strings.Join(p, "<br>\n"))
			b.WriteString("</p>\n")
		}
	}
	return b.String()
}

var (
	inlineMath  = regexp.MustCompile(`\\\((.+?)\\\)`)
	displayMath = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
)

// Markdown renders the explanation for terminals. Inline math becomes a code
// span and display math a fenced latex block.
func Markdown(e *domain.Explanation) string {
	var b strings.Builder
	for i, step := range e.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**Paso %d:** %s\n", step.Number, mathToMarkdown(step.Title))
		for _, p := range step.Blocks {
			lines := make([]string, len(p))
			for j, line := range p {
				lines[j] = mathToMarkdown(line)
			}
			b.WriteString("\n")
			b.WriteString(strings.Join(lines, "  \n"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func mathToMarkdown(s string) string {
	s = displayMath.ReplaceAllStringFunc(s, func(m string) string {
		inner := displayMath.FindStringSubmatch(m)[1]
		return "\n```latex\n" + strings.TrimSpace(inner) + "\n```\n"
	})
	return inlineMath.ReplaceAllStringFunc(s, func(m string) string {
		inner := inlineMath.FindStringSubmatch(m)[1]
		return "`" + strings.TrimSpace(inner) + "`"
	})
}

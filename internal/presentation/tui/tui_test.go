package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	out := buf.String()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, bannerLines[0])
	assert.NotContains(t, out, "\x1b[", "no colour codes for a non-terminal writer")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty", 80)
	require.NoError(t, err)

	res := trinomial.Render("2x^2+7x+3", markup.FormatMarkdown)
	out, err := render(res.Markup)
	require.NoError(t, err)

	assert.Contains(t, out, "Paso 1:")
	assert.Contains(t, out, "Paso 6:")
	assert.Greater(t, strings.Count(out, "\n"), 10)
}

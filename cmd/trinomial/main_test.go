package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/trinomial/internal/config"
	"github.com/aretw0/trinomial/internal/logging"
	"github.com/aretw0/trinomial/pkg/adapters/memory"
	"github.com/aretw0/trinomial/pkg/adapters/redis"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	assert.True(t, strings.HasPrefix(out, "trinomial version "))
}

func TestFactorCommand_Args(t *testing.T) {
	out := execute(t, "", "factor", "--format", "html", "2x^2", "+7x", "+3")
	assert.Contains(t, out, "<strong>Paso 1:</strong>")
	assert.Contains(t, out, "<strong>Paso 6:</strong>")
}

func TestFactorCommand_Markdown(t *testing.T) {
	out := execute(t, "", "factor", "--format", "markdown", "x^2", "-5x", "+6")
	assert.Contains(t, out, "**Paso 1:**")
	assert.NotContains(t, out, "<p>")
}

func TestFactorCommand_Stdin(t *testing.T) {
	out := execute(t, "x^2-5x+6\n\n3x+5\nquit\nx^2+1x+1\n", "factor", "--format", "html")
	assert.Equal(t, 1, strings.Count(out, "<strong>Paso 6:</strong>"))
	assert.Contains(t, out, "Error: La expresión debe tener la forma")
	assert.NotContains(t, out, "no es factorizable", "input after quit is ignored")
}

func TestFactorCommand_JSON(t *testing.T) {
	t.Cleanup(func() { factorCmd.Flags().Set("json", "false") })

	out := execute(t, "\"x^2-5x+6\"\n3x+5\n", "factor", "--format", "html", "--json")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"outcome":"factored"`)
	assert.Contains(t, lines[1], `"outcome":"malformed_input"`)
}

func TestFactorCommand_BadFormat(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"factor", "--format", "pdf", "x^2-5x+6"})
	assert.Error(t, rootCmd.Execute())
}

func TestNewCache(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewNop()

	cfg := config.Default()
	c, closeFn, err := newCache(ctx, cfg, logger)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, closeFn())

	cfg.Cache.Backend = config.CacheMemory
	c, _, err = newCache(ctx, cfg, logger)
	require.NoError(t, err)
	assert.IsType(t, &memory.Cache{}, c)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.Redis.Addr = mr.Addr()
	cfg.Cache.TTL = time.Minute
	c, closeFn, err = newCache(ctx, cfg, logger)
	require.NoError(t, err)
	assert.IsType(t, &redis.Cache{}, c)

	eng := newEngine(cfg, logger, c, domain.LifecycleHooks{})
	res, err := eng.Factor(ctx, "x^2-5x+6")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	res, err = eng.Factor(ctx, "x^2 - 5x + 6")
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.NoError(t, closeFn())

	mr.Close()
	_, _, err = newCache(ctx, cfg, logger)
	assert.Error(t, err)
}

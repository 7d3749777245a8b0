package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/internal/config"
	"github.com/aretw0/trinomial/internal/logging"
	"github.com/aretw0/trinomial/pkg/adapters/memory"
	"github.com/aretw0/trinomial/pkg/adapters/redis"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "trinomial",
	Short: "Trinomial explains the factorization of ax^2+bx+c step by step",
	Long: `Trinomial parses a quadratic trinomial such as 2x^2+7x+3 and explains its
factorization through the roots of the auxiliary equation x^2 - bx + ac = 0.

It runs as a one-shot CLI, an HTTP server with a small web page, or an MCP server.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// loadConfig reads --config and applies --log-level on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

// newLogger always writes to stderr; stdout carries explanations or JSON-RPC.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Log.JSON {
		return logging.NewWithWriter(os.Stderr, level, true), nil
	}
	return logging.New(level), nil
}

// newCache builds the configured result cache. The returned close func is never nil.
func newCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.ResultCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		logger.Debug("Using in-memory result cache")
		return memory.NewCache(), noop, nil
	case config.CacheRedis:
		c := redis.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB,
			redis.WithTTL(cfg.Cache.TTL),
			redis.WithPrefix(cfg.Cache.Prefix),
		)
		if err := c.Ping(ctx); err != nil {
			c.Close()
			return nil, noop, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Cache.Redis.Addr, err)
		}
		logger.Debug("Using redis result cache", "addr", cfg.Cache.Redis.Addr, "ttl", cfg.Cache.TTL)
		return c, c.Close, nil
	default:
		return nil, noop, nil
	}
}

// newEngine wires the engine from configuration.
func newEngine(cfg *config.Config, logger *slog.Logger, cache ports.ResultCache, hooks domain.LifecycleHooks, extra ...trinomial.Option) *trinomial.Engine {
	opts := []trinomial.Option{
		trinomial.WithLogger(logger),
		trinomial.WithMaxInputSize(cfg.Input.MaxSize),
		trinomial.WithLifecycleHooks(hooks),
	}
	if cache != nil {
		opts = append(opts, trinomial.WithCache(cache))
	}
	return trinomial.New(append(opts, extra...)...)
}

// logHooks reports every factorization at debug level.
func logHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFactor: func(ctx context.Context, e *domain.FactorEvent) {
			logger.Debug("Factorization served",
				"outcome", e.Outcome,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

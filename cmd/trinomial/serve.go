package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/internal/presentation/tui"
	httpAdapter "github.com/aretw0/trinomial/pkg/adapters/http"
	"github.com/aretw0/trinomial/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the factorization page at / and the JSON API at /api/factor.
The OpenAPI description is available at /openapi.yaml and /swagger;
Prometheus metrics at /metrics unless disabled in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cache, closeCache, err := newCache(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeCache()

		logged := logHooks(logger)
		hooks := logged
		handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if cfg.Metrics.Enabled {
			metrics := observability.NewMetrics()
			hooks = metrics.Hooks(&logged)
			handlerOpts = append(handlerOpts,
				httpAdapter.WithMetrics(metrics.Handler()),
				httpAdapter.WithMetricsPath(cfg.Metrics.Path),
			)
		}

		eng := newEngine(cfg, logger, cache, hooks)
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           httpAdapter.NewHandler(eng, handlerOpts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(trinomial.Version))

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Trinomial Server", "address", srv.Addr, "cache", cfg.Cache.Backend, "metrics", cfg.Metrics.Enabled)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Trinomial Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides config)")
}

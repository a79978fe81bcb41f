package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/api"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grading HTTP API",
	Long: `Start the HTTP API over the grading store.

Endpoints live under /api (gradings, criteria, ideal-parameters, details, feedback).
POST /api/gradings/:id/ai merges an AI grading into an existing grading.
Prometheus metrics are exposed on /metrics and a liveness probe on /healthz.

Examples:
  # Serve on the default address
  grading serve

  # Serve against PostgreSQL without notifications
  GRADING_DB_BACKEND=postgresql GRADING_DB_CONNECT="postgres://..." grading serve --notify-url ""`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runServe(rootCtx)
	},
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	observer, err := metrics.NewPrometheusObserver(metrics.DefaultNamespace, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewRouter(newService(observer), api.Options{Debug: cfg.Debug}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contract.LogInfo("Listening on %s (store: %s)", cfg.Listen, cfg.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		contract.LogInfo("Server stopped")
		return nil
	})
	return g.Wait()
}

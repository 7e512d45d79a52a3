package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"portal/internal/api"
	"portal/internal/api/handler/v1handler"
	"portal/internal/config"
	"portal/internal/worker"
	"portal/pkg/controller"
	"portal/pkg/logger"
	"portal/pkg/metrics"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupRiverUI returns the River dashboard handler mounted by the API server.
func setupRiverUI(ctx context.Context, client *river.Client[pgx.Tx]) *riverui.Handler {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    "/riverui",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create river ui", zap.Error(err))
	}
	if err := handler.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start river ui", zap.Error(err))
	}

	return handler
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			p := getPortal(ctx, cfg, strg, mp.Meter("portal"))

			// river stops through Stop below rather than on signal
			riverCtx := context.WithoutCancel(ctx)
			riverClient, err := worker.Start(riverCtx, strg.Pool, p, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
				JobTimeout: cfg.Worker.JobTimeout,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			checks := map[string]controller.HealthCheck{"postgres": strg.Ping}
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:            v1handler.Deps{Portal: p},
				MeterProvider:   mp,
				RiverUI:         setupRiverUI(riverCtx, riverClient),
				ReadinessChecks: checks,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}

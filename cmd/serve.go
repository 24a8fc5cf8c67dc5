package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"secondchance/internal/api"
	"secondchance/internal/api/handler/v1handler"
	"secondchance/internal/config"
	"secondchance/internal/linkcheck"
	"secondchance/pkg/logger"
	"secondchance/pkg/metrics"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server := api.NewServer(ctx, deps, api.NewOptions(cfg))

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

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			options := linkcheck.NewOptions(cfg)
			options.MeterProvider = mp
			checker := getChecker(ctx, cfg, strg, options)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   v1handler.Deps{Checker: checker},
				Health: strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			waitForChecker(shutdownCtx, cfg, checker)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}

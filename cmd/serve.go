package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"passportmrz/internal/api"
	"passportmrz/internal/api/handler/v1handler"
	"passportmrz/internal/config"
	"passportmrz/internal/verifier"
	"passportmrz/internal/worker"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background verification workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(meterProvider)

			verificationMetrics, err := metrics.NewVerification(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create verification metrics", zap.Error(err))
			}

			mrzVerifier := verifier.New(pg, getCountries(ctx, cfg), verificationMetrics, verifier.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, pg.Pool, mrzVerifier, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start verification workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{
				Deps:          v1handler.Deps{Verifier: mrzVerifier},
				Ping:          pg.Ping,
				MeterProvider: meterProvider,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed webserver
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping verification workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop verification workers", zap.Error(err))
				}

				if err := meterProvider.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "webserver failed", zap.Error(err))
			}
		},
	}

	return cmd
}

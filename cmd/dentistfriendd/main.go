package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/export"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/repository"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/server"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/vision/gemini"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "dentistfriendd",
		Short: "Clinic patient-record service with ledger photo ingestion",
	}
	root.AddCommand(serveCmd(logger), migrateCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			entc, pool, err := repository.Open(ctx, repository.Config{
				DSN:              cfg.Database.DSN,
				MaxConns:         cfg.Database.MaxConns,
				MinConns:         cfg.Database.MinConns,
				MaxConnLifetime:  cfg.Database.MaxConnLifetime,
				MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
				DialTimeout:      cfg.Database.DialTimeout,
				StatementTimeout: cfg.Database.StatementTimeout,
			}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(entc, pool, logger)

			if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
				return err
			}

			generator := gemini.NewClient(gemini.Config{
				APIKey:      cfg.Vision.APIKey,
				BaseURL:     cfg.Vision.BaseURL,
				Model:       cfg.Vision.Model,
				Temperature: cfg.Vision.Temperature,
				Timeout:     cfg.Vision.Timeout,
			}, logger)

			patients := repository.NewPatientRepository(entc, logger)
			templates := repository.NewTemplateRepository(entc, logger)
			profiles := repository.NewProfileRepository(entc, logger)
			exporter := export.NewService(patients, logger)

			svc := server.NewService(cfg, generator, patients, templates, profiles, exporter, logger)

			e := echo.New()
			e.HideBanner = true
			e.Use(middleware.Recover())
			e.Use(middleware.CORS())
			svc.RegisterRoutes(e)

			go func() {
				logger.Info("http.listen", "addr", cfg.Server.HTTPAddr)
				if err := e.Start(cfg.Server.HTTPAddr); err != nil && err != http.ErrServerClosed {
					logger.Error("http.serve_failed", "error", err)
					stop()
				}
			}()

			<-ctx.Done()
			logger.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if cfg.Database.DSN == "" {
				return common.NewAppError("CONFIG_ERROR", "DB_URL is required", common.ErrInvalidInput)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			entc, pool, err := repository.Open(ctx, repository.Config{
				DSN:             cfg.Database.DSN,
				MaxConns:        5,
				MinConns:        1,
				MaxConnLifetime: 30 * time.Minute,
				MaxConnIdleTime: 5 * time.Minute,
				DialTimeout:     cfg.Database.DialTimeout,
			}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(entc, pool, logger)

			if err := entc.Schema.Create(ctx); err != nil {
				logger.Error("migrate.failed", "error", err)
				return err
			}
			logger.Info("migrate.done")
			return nil
		},
	}
}

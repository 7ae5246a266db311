package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/edupay/salaryboard/internal/config"
	"github.com/edupay/salaryboard/internal/handler"
	"github.com/edupay/salaryboard/internal/logger"
	"github.com/edupay/salaryboard/internal/repository"
	"github.com/edupay/salaryboard/internal/router"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("addr", cfg.Addr()).
		Str("mode", cfg.GinMode).
		Str("data_dir", cfg.DataDir).
		Msg("Starting Salaryboard")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Dataset ──────────────────────────────────────────────────
	// The dataset is read once and served read-only; a missing file is
	// fatal and the operator is told to run the generator first.
	repo, err := repository.LoadDataset(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load salary dataset")
	}
	log.Info().Int("districts", repo.Len()).Msg("Dataset loaded")

	// ─── Initialize Services ──────────────────────────────────────────
	dashboardService := service.NewDashboardService(repo)
	districtService := service.NewDistrictService(repo)
	chartService := service.NewChartService(dashboardService)
	exportService := service.NewExportService(districtService)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		District:  handler.NewDistrictHandler(districtService),
		Meta:      handler.NewMetaHandler(dashboardService),
		Chart:     handler.NewChartHandler(chartService),
		Export:    handler.NewExportHandler(exportService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

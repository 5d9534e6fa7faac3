package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/ai"
	"github.com/scribeflow/api/internal/config"
	v1 "github.com/scribeflow/api/internal/handler/v1"
	"github.com/scribeflow/api/internal/repository"
	"github.com/scribeflow/api/internal/service"
	"github.com/scribeflow/api/pkg/database"
	"github.com/scribeflow/api/pkg/logger"
	"github.com/scribeflow/api/pkg/metrics"
	"github.com/scribeflow/api/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	mc := metrics.NewCollector("scribeflow")

	patientRepo := repository.NewPatientRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	aiClient := ai.NewOpenAIClient(cfg.AI, log)

	router := v1.NewRouter(v1.RouterDeps{
		Patients:  service.NewPatientService(patientRepo, mc, log),
		Notes:     service.NewNoteService(noteRepo, patientRepo, mc, log),
		Scribe:    service.NewScribeService(aiClient, mc, log),
		Admin:     service.NewAdminService(patientRepo, noteRepo, log),
		DB:        db,
		Collector: mc,
		Log:       log,
		CORS:      cfg.CORS,
		Env:       cfg.App.Environment,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/config"
	"github.com/rendite-app/rendite/internal/repository/mongodb"
	"github.com/rendite-app/rendite/internal/repository/sheets"
	"github.com/rendite-app/rendite/internal/scheduler"
	"github.com/rendite-app/rendite/internal/server/handlers"
	"github.com/rendite-app/rendite/internal/server/router"
	analysissvc "github.com/rendite-app/rendite/internal/service/analysis"
	insightsvc "github.com/rendite-app/rendite/internal/service/insight"
	scenariosvc "github.com/rendite-app/rendite/internal/service/scenario"
	"github.com/rendite-app/rendite/pkg/clients/anthropic"
	"github.com/rendite-app/rendite/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Optional spreadsheet export.
	var exporter sheets.Exporter
	if cfg.SheetsEnabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("spreadsheet export enabled")
	}

	// Optional AI client.
	var aiClient anthropic.Client
	if cfg.AI.AnthropicKey != "" {
		aiClient = anthropic.NewClient(cfg.AI.AnthropicKey)
		baseLogger.Info("anthropic ai client enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, listing extraction and commentary disabled")
	}

	analysisSvc := analysissvc.NewService(mongoRepo, exporter, baseLogger.Named("svc.analysis"))
	scenarioSvc := scenariosvc.NewService(mongoRepo, baseLogger.Named("svc.scenario"))
	insightSvc := insightsvc.NewService(aiClient, baseLogger.Named("svc.insight"))

	analysisHandler := handlers.NewAnalysisHandler(analysisSvc, insightSvc, baseLogger.Named("handlers.analysis"))
	scenarioHandler := handlers.NewScenarioHandler(scenarioSvc, baseLogger.Named("handlers.scenario"))
	engine := router.New(analysisHandler, scenarioHandler, baseLogger.Named("router"))

	// Nightly re-derivation sweep keeps stored derived values in sync with
	// the model.
	sched := scheduler.NewScheduler(cfg.Maintenance, analysisSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/config"
	"github.com/tcn-coffee/fieldbook/internal/repository/memory"
	"github.com/tcn-coffee/fieldbook/internal/repository/mongodb"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
	"github.com/tcn-coffee/fieldbook/internal/repository/sheets"
	"github.com/tcn-coffee/fieldbook/internal/scheduler"
	"github.com/tcn-coffee/fieldbook/internal/server/handlers"
	"github.com/tcn-coffee/fieldbook/internal/server/router"
	backupsvc "github.com/tcn-coffee/fieldbook/internal/service/backup"
	"github.com/tcn-coffee/fieldbook/pkg/clients/recordapi"
	"github.com/tcn-coffee/fieldbook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var store recordstore.Store
	switch cfg.Store.Backend {
	case config.BackendMongo:
		mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoRepo
	case config.BackendRecordAPI:
		store = recordapi.NewClient(cfg.RecordAPI)
		baseLogger.Info("record api store enabled", zap.String("base_url", cfg.RecordAPI.BaseURL))
	case config.BackendMemory:
		store = memory.New()
		baseLogger.Warn("memory store enabled, records will not survive a restart")
	}

	var backupLog sheets.BackupLog
	if cfg.SheetsEnabled() {
		backupLog, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets backup log", zap.Error(err))
		}
	} else {
		baseLogger.Info("sheets backup log not configured")
	}

	backupService := backupsvc.NewService(store, baseLogger.Named("svc.backup"))

	advisoryHandler := handlers.NewAdvisoryHandler(baseLogger.Named("handlers.advisory"))
	backupHandler := handlers.NewBackupHandler(backupService, baseLogger.Named("handlers.backup"))
	recordsHandler := handlers.NewRecordsHandler(store, baseLogger.Named("handlers.records"))
	engine := router.New(advisoryHandler, backupHandler, recordsHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, backupService, backupLog, baseLogger.Named("scheduler"))
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

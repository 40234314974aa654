package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bher20/ecoagua/internal/config"
	"github.com/bher20/ecoagua/internal/logging"
	"github.com/bher20/ecoagua/internal/reporting"
	"github.com/bher20/ecoagua/internal/storage"
	"github.com/bher20/ecoagua/internal/tariffs"
)

// app bundles the collaborators shared by every command.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	store   storage.Storage
	tariffs *tariffs.Service
	reports *reporting.Service
}

// newApp loads configuration, opens storage and seeds the tariff catalog.
// logFormat overrides the configured format when non-empty.
func newApp(ctx context.Context, logFormat string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logFormat == "" {
		logFormat = cfg.LogFormat
	}
	log, err := logging.New(cfg.LogLevel, logFormat, "ecoagua")
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := storage.Open(ctx, storage.Config{Driver: cfg.DBDriver, DSN: cfg.DBDSN}, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open storage (driver=%s): %w", cfg.DBDriver, err)
	}

	cat := tariffs.NewService(st, log)
	if err := cat.Seed(ctx, cfg.Tariffs); err != nil {
		st.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		store:   st,
		tariffs: cat,
		reports: reporting.NewService(cat, log),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("close storage", zap.Error(err))
	}
	_ = a.log.Sync()
}

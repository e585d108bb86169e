package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/config"
	"github.com/salareserva/room-reservation-backend/internal/db"
	"github.com/salareserva/room-reservation-backend/internal/logger"
)

// bootstrap loads config, builds the logger and connects to the database.
func bootstrap(ctx context.Context) (*config.Config, *logrus.Logger, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction, os.Stdout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if cfg.EnvFileErr != nil {
		log.WithError(cfg.EnvFileErr).Debug("no .env file loaded")
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return cfg, log, pool, nil
}

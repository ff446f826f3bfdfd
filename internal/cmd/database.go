package main

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/sportsworldcentral/swc-api/internal/database"
	"github.com/sportsworldcentral/swc-api/internal/dbconfig"
)

func setupDatabase(ctx context.Context) (*sql.DB, error) {
	cfg := dbconfig.NewConfigFromEnv()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.Path).Msg("connected to database")
	return db, nil
}

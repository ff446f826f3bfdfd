package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sportsworldcentral/swc-api/internal/database"
	"github.com/sportsworldcentral/swc-api/internal/dbconfig"
	"github.com/sportsworldcentral/swc-api/internal/seed"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	assetsDir := flag.String("assets", "internal/assets", "directory holding the JSON fixture files")
	flag.Parse()

	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	seeder := seed.NewSeeder(db, clockwork.NewRealClock())
	summaries, err := seeder.Run(ctx, *assetsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	for _, summary := range summaries {
		log.Info().
			Str("entity", summary.Entity).
			Int("total", summary.Total).
			Int("inserted", summary.Inserted).
			Int("skipped", summary.Skipped).
			Int("errors", summary.Errors).
			Msg("seeded fixtures")
	}
}

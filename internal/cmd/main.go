package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/sportsworldcentral/swc-api/docs"
)

// @title Sports World Central (SWC) Fantasy Football API
// @version 0.1
// @description This API provides read-only access to info from the SportsWorldCentral (SWC) Fantasy Football API.
// @description The endpoints are grouped into the following categories:
// @description
// @description ## Analytics
// @description Get information about the health of the API and counts of leagues, teams, and players.
// @description
// @description ## Player
// @description You can get a list of NFL players, or search for an individual player by player_id.
// @description
// @description ## Scoring
// @description You can get a list of NFL player performances, including the fantasy points they scored using the SWC league scoring.
// @description
// @description ## Membership
// @description Get information about all the SWC fantasy football leagues and the teams in them.
func main() {
	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	applyLogLevel(cfg.Log.Level)

	db, err := setupDatabase(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup database")
	}
	defer db.Close()

	services := setupServices(db)
	server := setupServer(cfg, services)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("api server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("api server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("api server shutdown complete")
}

package main

import (
	"database/sql"

	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/analytics"
	"github.com/sportsworldcentral/swc-api/internal/leagues"
	"github.com/sportsworldcentral/swc-api/internal/performances"
	"github.com/sportsworldcentral/swc-api/internal/players"
	"github.com/sportsworldcentral/swc-api/internal/teams"
)

type Services struct {
	Analytics    *analytics.Service
	Players      *players.Service
	Performances *performances.Service
	Leagues      *leagues.Service
	Teams        *teams.Service
}

func setupServices(db *sql.DB) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	validate := validator.New()

	// Players
	playersRepo := players.NewRepository(db)
	playersApp := players.NewApp(playersRepo)
	playersService := players.NewService(playersApp, validate)

	// Performances
	performancesRepo := performances.NewRepository(db)
	performancesApp := performances.NewApp(performancesRepo)
	performancesService := performances.NewService(performancesApp, validate)

	// Teams
	teamsRepo := teams.NewRepository(db)
	teamsApp := teams.NewApp(teamsRepo)
	teamsService := teams.NewService(teamsApp, validate)

	// Leagues nest their member teams through the teams app
	leaguesRepo := leagues.NewRepository(db)
	leaguesApp := leagues.NewApp(leaguesRepo, teamsApp)
	leaguesService := leagues.NewService(leaguesApp, validate)

	// Analytics
	analyticsApp := analytics.NewApp(playersApp, teamsApp, leaguesApp)
	analyticsService := analytics.NewService(analyticsApp)

	return &Services{
		Analytics:    analyticsService,
		Players:      playersService,
		Performances: performancesService,
		Leagues:      leaguesService,
		Teams:        teamsService,
	}
}

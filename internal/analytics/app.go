package analytics

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// PlayersCounter provides the player total for the counts report
type PlayersCounter interface {
	CountPlayers(ctx context.Context) (int, error)
}

// TeamsCounter provides the team total for the counts report
type TeamsCounter interface {
	CountTeams(ctx context.Context) (int, error)
}

// LeaguesCounter provides the league total for the counts report
type LeaguesCounter interface {
	CountLeagues(ctx context.Context) (int, error)
}

// App assembles the membership and player totals
type App struct {
	players PlayersCounter
	teams   TeamsCounter
	leagues LeaguesCounter
}

// NewApp creates a new analytics App
func NewApp(players PlayersCounter, teams TeamsCounter, leagues LeaguesCounter) *App {
	return &App{
		players: players,
		teams:   teams,
		leagues: leagues,
	}
}

// GetCounts returns the league, team, and player totals
func (a *App) GetCounts(ctx context.Context) (*models.Counts, error) {
	leagueCount, err := a.leagues.CountLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leagues: %w", err)
	}
	teamCount, err := a.teams.CountTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	playerCount, err := a.players.CountPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}

	return &models.Counts{
		LeagueCount: leagueCount,
		TeamCount:   teamCount,
		PlayerCount: playerCount,
	}, nil
}

package teams

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	ListTeams(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error)
	ListTeamsByLeagueIDs(ctx context.Context, leagueIDs []int) (map[int][]models.Team, error)
	CountTeams(ctx context.Context) (int, error)
}

// App handles teams business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListTeams retrieves teams matching the filter and window
func (a *App) ListTeams(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error) {
	teams, err := a.repo.ListTeams(ctx, filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ListTeamsByLeagueIDs retrieves the teams of the given leagues, keyed
// by league id
func (a *App) ListTeamsByLeagueIDs(ctx context.Context, leagueIDs []int) (map[int][]models.Team, error) {
	grouped, err := a.repo.ListTeamsByLeagueIDs(ctx, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by league: %w", err)
	}
	return grouped, nil
}

// CountTeams returns the total number of teams
func (a *App) CountTeams(ctx context.Context) (int, error) {
	count, err := a.repo.CountTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

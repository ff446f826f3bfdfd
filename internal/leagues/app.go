package leagues

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	ListLeagues(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error)
	GetLeague(ctx context.Context, leagueID int) (*models.League, error)
	CountLeagues(ctx context.Context) (int, error)
}

// TeamsLister provides the nested team rosters for league responses
type TeamsLister interface {
	ListTeamsByLeagueIDs(ctx context.Context, leagueIDs []int) (map[int][]models.Team, error)
}

// App handles leagues business logic
type App struct {
	repo     LeaguesRepository
	teamsApp TeamsLister
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, teamsApp TeamsLister) *App {
	return &App{
		repo:     repo,
		teamsApp: teamsApp,
	}
}

// ListLeagues retrieves leagues matching the filter and window, with
// member teams attached
func (a *App) ListLeagues(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error) {
	leagues, err := a.repo.ListLeagues(ctx, filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	if err := a.attachTeams(ctx, leagues); err != nil {
		return nil, fmt.Errorf("failed to load league teams: %w", err)
	}
	return leagues, nil
}

// GetLeague retrieves a league by ID, with member teams attached
func (a *App) GetLeague(ctx context.Context, leagueID int) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	grouped, err := a.teamsApp.ListTeamsByLeagueIDs(ctx, []int{league.LeagueID})
	if err != nil {
		return nil, fmt.Errorf("failed to load league teams: %w", err)
	}
	if teams, ok := grouped[league.LeagueID]; ok {
		league.Teams = teams
	}

	return league, nil
}

// CountLeagues returns the total number of leagues
func (a *App) CountLeagues(ctx context.Context) (int, error) {
	count, err := a.repo.CountLeagues(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count leagues: %w", err)
	}
	return count, nil
}

func (a *App) attachTeams(ctx context.Context, leagues []models.League) error {
	if len(leagues) == 0 {
		return nil
	}

	ids := make([]int, len(leagues))
	for i := range leagues {
		ids[i] = leagues[i].LeagueID
	}

	grouped, err := a.teamsApp.ListTeamsByLeagueIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range leagues {
		if teams, ok := grouped[leagues[i].LeagueID]; ok {
			leagues[i].Teams = teams
		}
	}
	return nil
}

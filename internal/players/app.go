package players

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// PlayersRepository defines what the app layer needs from the repository
type PlayersRepository interface {
	ListPlayers(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error)
	GetPlayer(ctx context.Context, playerID int) (*models.Player, error)
	CountPlayers(ctx context.Context) (int, error)
}

// App handles players business logic
type App struct {
	repo PlayersRepository
}

// NewApp creates a new players App
func NewApp(repo PlayersRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListPlayers retrieves players matching the filter and window
func (a *App) ListPlayers(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error) {
	players, err := a.repo.ListPlayers(ctx, filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, playerID int) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// CountPlayers returns the total number of players
func (a *App) CountPlayers(ctx context.Context) (int, error) {
	count, err := a.repo.CountPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

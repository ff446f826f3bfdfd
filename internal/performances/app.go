package performances

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// PerformancesRepository defines what the app layer needs from the repository
type PerformancesRepository interface {
	ListPerformances(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error)
}

// App handles performances business logic
type App struct {
	repo PerformancesRepository
}

// NewApp creates a new performances App
func NewApp(repo PerformancesRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListPerformances retrieves performances matching the filter and window
func (a *App) ListPerformances(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error) {
	performances, err := a.repo.ListPerformances(ctx, filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}
	return performances, nil
}

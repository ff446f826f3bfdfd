package performances

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// Repository implements performance data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new performances repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// ListPerformances retrieves weekly scoring rows, ordered by performance
// id, windowed by skip and limit
func (r *Repository) ListPerformances(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error) {
	query := `SELECT performance_id, player_id, week_number, fantasy_points, last_changed_date
	            FROM performance`
	var args []any
	if filter.MinLastChangedDate != nil {
		query += " WHERE last_changed_date >= ?"
		args = append(args, filter.MinLastChangedDate.String())
	}
	query += " ORDER BY performance_id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}
	defer rows.Close()

	// Allocation hint only; the LIMIT clause still carries the full window.
	capacity := limit
	if capacity > 256 {
		capacity = 256
	}
	performances := make([]models.Performance, 0, capacity)
	for rows.Next() {
		var perf models.Performance
		if err := rows.Scan(
			&perf.PerformanceID,
			&perf.PlayerID,
			&perf.WeekNumber,
			&perf.FantasyPoints,
			&perf.LastChangedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance: %w", err)
		}
		performances = append(performances, perf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}

	return performances, nil
}

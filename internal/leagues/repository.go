package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// Repository implements league data access operations. Rows come back
// without nested teams; the app layer attaches those.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new leagues repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

const leagueColumns = "league_id, league_name, scoring_type, last_changed_date"

// ListLeagues retrieves leagues matching the filter, ordered by league
// id, windowed by skip and limit
func (r *Repository) ListLeagues(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error) {
	var conds []string
	var args []any

	if filter.LeagueName != nil {
		conds = append(conds, "league_name = ?")
		args = append(args, *filter.LeagueName)
	}
	if filter.MinLastChangedDate != nil {
		conds = append(conds, "last_changed_date >= ?")
		args = append(args, filter.MinLastChangedDate.String())
	}

	query := "SELECT " + leagueColumns + " FROM league"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY league_id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	// Allocation hint only; the LIMIT clause still carries the full window.
	capacity := limit
	if capacity > 256 {
		capacity = 256
	}
	leagues := make([]models.League, 0, capacity)
	for rows.Next() {
		var league models.League
		if err := rows.Scan(
			&league.LeagueID,
			&league.LeagueName,
			&league.ScoringType,
			&league.LastChangedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		league.Teams = make([]models.Team, 0, 8)
		leagues = append(leagues, league)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	return leagues, nil
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, leagueID int) (*models.League, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+leagueColumns+" FROM league WHERE league_id = ?", leagueID)

	var league models.League
	err := row.Scan(
		&league.LeagueID,
		&league.LeagueName,
		&league.ScoringType,
		&league.LastChangedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	league.Teams = make([]models.Team, 0, 8)

	return &league, nil
}

// CountLeagues returns the total number of league rows
func (r *Repository) CountLeagues(ctx context.Context) (int, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM league")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leagues: %w", err)
	}

	return count, nil
}

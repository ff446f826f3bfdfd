package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// Repository implements player data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new players repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

const playerColumns = "player_id, gsis_id, first_name, last_name, position, last_changed_date"

// ListPlayers retrieves players matching the filter, ordered by player
// id, windowed by skip and limit
func (r *Repository) ListPlayers(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error) {
	var conds []string
	var args []any

	if filter.FirstName != nil {
		conds = append(conds, "first_name = ?")
		args = append(args, *filter.FirstName)
	}
	if filter.LastName != nil {
		conds = append(conds, "last_name = ?")
		args = append(args, *filter.LastName)
	}
	if filter.MinLastChangedDate != nil {
		conds = append(conds, "last_changed_date >= ?")
		args = append(args, filter.MinLastChangedDate.String())
	}

	query := "SELECT " + playerColumns + " FROM player"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY player_id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	// Allocation hint only; the LIMIT clause still carries the full window.
	capacity := limit
	if capacity > 256 {
		capacity = 256
	}
	players := make([]models.Player, 0, capacity)
	for rows.Next() {
		var player models.Player
		if err := rows.Scan(
			&player.PlayerID,
			&player.GsisID,
			&player.FirstName,
			&player.LastName,
			&player.Position,
			&player.LastChangedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return players, nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, playerID int) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM player WHERE player_id = ?", playerID)

	var player models.Player
	err := row.Scan(
		&player.PlayerID,
		&player.GsisID,
		&player.FirstName,
		&player.LastName,
		&player.Position,
		&player.LastChangedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// CountPlayers returns the total number of player rows
func (r *Repository) CountPlayers(ctx context.Context) (int, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM player")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return count, nil
}

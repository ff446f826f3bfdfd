package teams

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// Repository implements team data access operations, including roster
// loading through the team_player association
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new teams repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

const teamColumns = "team_id, team_name, league_id, last_changed_date"

// ListTeams retrieves teams matching the filter, ordered by team id,
// windowed by skip and limit, with rosters attached
func (r *Repository) ListTeams(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error) {
	var conds []string
	var args []any

	if filter.TeamName != nil {
		conds = append(conds, "team_name = ?")
		args = append(args, *filter.TeamName)
	}
	if filter.LeagueID != nil {
		conds = append(conds, "league_id = ?")
		args = append(args, *filter.LeagueID)
	}
	if filter.MinLastChangedDate != nil {
		conds = append(conds, "last_changed_date >= ?")
		args = append(args, filter.MinLastChangedDate.String())
	}

	query := "SELECT " + teamColumns + " FROM team"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY team_id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	teams, err := r.queryTeams(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if err := r.attachRosters(ctx, teams); err != nil {
		return nil, fmt.Errorf("failed to load team rosters: %w", err)
	}

	return teams, nil
}

// ListTeamsByLeagueIDs retrieves all teams belonging to the given
// leagues, keyed by league id, with rosters attached
func (r *Repository) ListTeamsByLeagueIDs(ctx context.Context, leagueIDs []int) (map[int][]models.Team, error) {
	grouped := make(map[int][]models.Team, len(leagueIDs))
	if len(leagueIDs) == 0 {
		return grouped, nil
	}

	args := make([]any, len(leagueIDs))
	for i, id := range leagueIDs {
		args[i] = id
	}
	query := "SELECT " + teamColumns + " FROM team WHERE league_id IN (" +
		placeholders(len(leagueIDs)) + ") ORDER BY team_id ASC"

	teams, err := r.queryTeams(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by league: %w", err)
	}
	if err := r.attachRosters(ctx, teams); err != nil {
		return nil, fmt.Errorf("failed to load team rosters: %w", err)
	}

	for _, team := range teams {
		grouped[team.LeagueID] = append(grouped[team.LeagueID], team)
	}
	return grouped, nil
}

// CountTeams returns the total number of team rows
func (r *Repository) CountTeams(ctx context.Context) (int, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM team")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}

	return count, nil
}

func (r *Repository) queryTeams(ctx context.Context, query string, args ...any) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0, 8)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.TeamID,
			&team.TeamName,
			&team.LeagueID,
			&team.LastChangedDate,
		); err != nil {
			return nil, err
		}
		team.Players = make([]models.Player, 0, 8)
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// attachRosters loads the players for each team in one batched query
// through team_player.
func (r *Repository) attachRosters(ctx context.Context, teams []models.Team) error {
	if len(teams) == 0 {
		return nil
	}

	args := make([]any, len(teams))
	index := make(map[int]int, len(teams))
	for i := range teams {
		args[i] = teams[i].TeamID
		index[teams[i].TeamID] = i
	}

	query := `SELECT tp.team_id, p.player_id, p.gsis_id, p.first_name, p.last_name, p.position, p.last_changed_date
	            FROM team_player tp
	            JOIN player p ON p.player_id = tp.player_id
	           WHERE tp.team_id IN (` + placeholders(len(teams)) + `)
	           ORDER BY tp.team_id ASC, p.player_id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var teamID int
		var player models.Player
		if err := rows.Scan(
			&teamID,
			&player.PlayerID,
			&player.GsisID,
			&player.FirstName,
			&player.LastName,
			&player.Position,
			&player.LastChangedDate,
		); err != nil {
			return err
		}
		if i, ok := index[teamID]; ok {
			teams[i].Players = append(teams[i].Players, player)
		}
	}
	return rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

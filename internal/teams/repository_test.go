package teams

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/database"
	"github.com/sportsworldcentral/swc-api/internal/dbconfig"
	"github.com/sportsworldcentral/swc-api/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &dbconfig.Config{
		Path:          filepath.Join(t.TempDir(), "teams.db"),
		JournalMode:   "WAL",
		BusyTimeoutMS: 5000,
		Synchronous:   "NORMAL",
	}
	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close database: %v", err)
		}
	})
	return db
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func seedTeams(t *testing.T, db *sql.DB) {
	t.Helper()

	mustExec(t, db,
		`INSERT INTO league (league_id, league_name, scoring_type, last_changed_date)
		 VALUES (5001, 'Pigskin Prodigal Fantasy League', 'PPR', '2024-03-01'),
		        (5002, 'Gridiron Gurus Keeper League', 'Standard', '2024-04-10')`)

	mustExec(t, db,
		`INSERT INTO team (team_id, team_name, league_id, last_changed_date)
		 VALUES (20001, 'Underdog Dynasty', 5001, '2024-03-20'),
		        (20002, 'Turf Titans', 5001, '2024-04-01'),
		        (20003, 'Blitz Brigade', 5001, '2024-04-15'),
		        (20004, 'End Zone Elite', 5002, '2024-04-12')`)

	mustExec(t, db,
		`INSERT INTO player (player_id, gsis_id, first_name, last_name, position, last_changed_date)
		 VALUES (1001, '00-0019596', 'Aaron', 'Rodgers', 'QB', '2024-03-15'),
		        (1002, '00-0031381', 'Davante', 'Adams', 'WR', '2024-03-31'),
		        (2009, '00-0039150', 'Bryce', 'Young', 'QB', '2024-04-05')`)

	mustExec(t, db,
		`INSERT INTO team_player (team_id, player_id)
		 VALUES (20001, 1001),
		        (20001, 1002),
		        (20002, 2009)`)
}

func TestListTeamsAttachesRosters(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	teams, err := repo.ListTeams(context.Background(), TeamFilter{}, 0, 100)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 4 {
		t.Fatalf("got %d teams, want 4", len(teams))
	}

	if len(teams[0].Players) != 2 {
		t.Fatalf("team %d roster size = %d, want 2", teams[0].TeamID, len(teams[0].Players))
	}
	if teams[0].Players[0].PlayerID != 1001 || teams[0].Players[1].PlayerID != 1002 {
		t.Fatalf("roster out of order: [%d %d]", teams[0].Players[0].PlayerID, teams[0].Players[1].PlayerID)
	}

	// Teams without roster rows still render an empty list, not null.
	if teams[2].Players == nil || len(teams[2].Players) != 0 {
		t.Fatalf("team %d roster = %v, want empty non-nil", teams[2].TeamID, teams[2].Players)
	}
}

func TestListTeamsFiltersByLeagueID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	leagueID := 5001
	teams, err := repo.ListTeams(context.Background(), TeamFilter{LeagueID: &leagueID}, 0, 100)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(teams))
	}
	for _, team := range teams {
		if team.LeagueID != 5001 {
			t.Fatalf("team %d belongs to league %d, want 5001", team.TeamID, team.LeagueID)
		}
	}
}

func TestListTeamsFiltersByName(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	teamName := "Turf Titans"
	teams, err := repo.ListTeams(context.Background(), TeamFilter{TeamName: &teamName}, 0, 100)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(teams))
	}
	if teams[0].TeamID != 20002 {
		t.Fatalf("got team %d, want 20002", teams[0].TeamID)
	}
}

func TestListTeamsMinLastChangedDateIsInclusive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	minDate := models.NewDate(2024, time.April, 1)
	teams, err := repo.ListTeams(context.Background(), TeamFilter{MinLastChangedDate: &minDate}, 0, 100)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	want := []int{20002, 20003, 20004}
	if len(teams) != len(want) {
		t.Fatalf("got %d teams, want %d", len(teams), len(want))
	}
	for i, id := range want {
		if teams[i].TeamID != id {
			t.Fatalf("teams[%d] = %d, want %d", i, teams[i].TeamID, id)
		}
	}
}

func TestListTeamsByLeagueIDs(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	grouped, err := repo.ListTeamsByLeagueIDs(context.Background(), []int{5001, 5002})
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if len(grouped[5001]) != 3 {
		t.Fatalf("league 5001 has %d teams, want 3", len(grouped[5001]))
	}
	if len(grouped[5002]) != 1 {
		t.Fatalf("league 5002 has %d teams, want 1", len(grouped[5002]))
	}
	if len(grouped[5001][0].Players) != 2 {
		t.Fatalf("nested roster size = %d, want 2", len(grouped[5001][0].Players))
	}

	grouped, err = repo.ListTeamsByLeagueIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("list teams by league with no ids: %v", err)
	}
	if len(grouped) != 0 {
		t.Fatalf("got %d groups, want 0", len(grouped))
	}
}

func TestCountTeams(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedTeams(t, db)
	repo := NewRepository(db)

	count, err := repo.CountTeams(context.Background())
	if err != nil {
		t.Fatalf("count teams: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}

package leagues

import (
	"context"
	"database/sql"
	"errors"
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
		Path:          filepath.Join(t.TempDir(), "leagues.db"),
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

func seedLeagues(t *testing.T, db *sql.DB) {
	t.Helper()

	mustExec(t, db,
		`INSERT INTO league (league_id, league_name, scoring_type, last_changed_date)
		 VALUES (5001, 'Pigskin Prodigal Fantasy League', 'PPR', '2024-03-01'),
		        (5002, 'Gridiron Gurus Keeper League', 'Standard', '2024-04-10'),
		        (5003, 'Hail Mary Half Point League', 'Half-PPR', '2024-04-20')`)

	mustExec(t, db,
		`INSERT INTO team (team_id, team_name, league_id, last_changed_date)
		 VALUES (20001, 'Underdog Dynasty', 5001, '2024-03-20'),
		        (20002, 'Turf Titans', 5001, '2024-04-01'),
		        (20003, 'End Zone Elite', 5002, '2024-04-12')`)

	mustExec(t, db,
		`INSERT INTO player (player_id, gsis_id, first_name, last_name, position, last_changed_date)
		 VALUES (2009, '00-0039150', 'Bryce', 'Young', 'QB', '2024-04-05')`)

	mustExec(t, db,
		`INSERT INTO team_player (team_id, player_id) VALUES (20001, 2009)`)
}

func TestListLeaguesOrdersByID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	leagues, err := repo.ListLeagues(context.Background(), LeagueFilter{}, 0, 100)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 3 {
		t.Fatalf("got %d leagues, want 3", len(leagues))
	}
	for i := 1; i < len(leagues); i++ {
		if leagues[i-1].LeagueID >= leagues[i].LeagueID {
			t.Fatalf("leagues out of order: %d before %d", leagues[i-1].LeagueID, leagues[i].LeagueID)
		}
	}
}

func TestListLeaguesFiltersByName(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	name := "Pigskin Prodigal Fantasy League"
	leagues, err := repo.ListLeagues(context.Background(), LeagueFilter{LeagueName: &name}, 0, 100)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 1 {
		t.Fatalf("got %d leagues, want 1", len(leagues))
	}
	if leagues[0].LeagueID != 5001 {
		t.Fatalf("got league %d, want 5001", leagues[0].LeagueID)
	}
}

func TestListLeaguesMinLastChangedDateIsInclusive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	minDate := models.NewDate(2024, time.April, 10)
	leagues, err := repo.ListLeagues(context.Background(), LeagueFilter{MinLastChangedDate: &minDate}, 0, 100)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("got %d leagues, want 2", len(leagues))
	}
	if leagues[0].LeagueID != 5002 {
		t.Fatalf("got first league %d, want 5002", leagues[0].LeagueID)
	}
}

func TestListLeaguesOversizedLimitReturnsAllRows(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	leagues, err := repo.ListLeagues(context.Background(), LeagueFilter{}, 0, 1<<60)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 3 {
		t.Fatalf("got %d leagues, want 3", len(leagues))
	}
}

func TestGetLeagueRoundTrip(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	league, err := repo.GetLeague(context.Background(), 5001)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if league.LeagueName != "Pigskin Prodigal Fantasy League" {
		t.Fatalf("league_name = %q, want Pigskin Prodigal Fantasy League", league.LeagueName)
	}
	if league.ScoringType != "PPR" {
		t.Fatalf("scoring_type = %q, want PPR", league.ScoringType)
	}
	if league.Teams == nil {
		t.Fatal("teams must be an empty list before the app layer attaches them")
	}
}

func TestGetLeagueNotFound(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	_, err := repo.GetLeague(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCountLeagues(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedLeagues(t, db)
	repo := NewRepository(db)

	count, err := repo.CountLeagues(context.Background())
	if err != nil {
		t.Fatalf("count leagues: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

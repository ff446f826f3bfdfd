package performances

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
		Path:          filepath.Join(t.TempDir(), "performances.db"),
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

func seedPerformances(t *testing.T, db *sql.DB) []models.Performance {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO player (player_id, gsis_id, first_name, last_name, position, last_changed_date)
		 VALUES (1001, '00-0019596', 'Aaron', 'Rodgers', 'QB', '2024-03-15'),
		        (2009, '00-0039150', 'Bryce', 'Young', 'QB', '2024-04-05')`,
	)
	if err != nil {
		t.Fatalf("insert players: %v", err)
	}

	scoring := []models.Performance{
		{PerformanceID: 1, PlayerID: 1001, WeekNumber: "1", FantasyPoints: 18.7, LastChangedDate: models.NewDate(2024, time.March, 10)},
		{PerformanceID: 2, PlayerID: 2009, WeekNumber: "1", FantasyPoints: 12.3, LastChangedDate: models.NewDate(2024, time.March, 10)},
		{PerformanceID: 3, PlayerID: 1001, WeekNumber: "2", FantasyPoints: 22.1, LastChangedDate: models.NewDate(2024, time.April, 1)},
		{PerformanceID: 4, PlayerID: 2009, WeekNumber: "2", FantasyPoints: 9.8, LastChangedDate: models.NewDate(2024, time.April, 8)},
	}
	for _, perf := range scoring {
		_, err := db.Exec(
			`INSERT INTO performance (performance_id, player_id, week_number, fantasy_points, last_changed_date)
			 VALUES (?, ?, ?, ?, ?)`,
			perf.PerformanceID, perf.PlayerID, perf.WeekNumber, perf.FantasyPoints, perf.LastChangedDate.String(),
		)
		if err != nil {
			t.Fatalf("insert performance %d: %v", perf.PerformanceID, err)
		}
	}
	return scoring
}

func TestListPerformancesOrdersByID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	scoring := seedPerformances(t, db)
	repo := NewRepository(db)

	performances, err := repo.ListPerformances(context.Background(), PerformanceFilter{}, 0, 100)
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if len(performances) != len(scoring) {
		t.Fatalf("got %d performances, want %d", len(performances), len(scoring))
	}
	for i := 1; i < len(performances); i++ {
		if performances[i-1].PerformanceID >= performances[i].PerformanceID {
			t.Fatalf("performances out of order: %d before %d",
				performances[i-1].PerformanceID, performances[i].PerformanceID)
		}
	}
}

func TestListPerformancesWindow(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedPerformances(t, db)
	repo := NewRepository(db)

	performances, err := repo.ListPerformances(context.Background(), PerformanceFilter{}, 1, 2)
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if len(performances) != 2 {
		t.Fatalf("got %d performances, want 2", len(performances))
	}
	if performances[0].PerformanceID != 2 || performances[1].PerformanceID != 3 {
		t.Fatalf("got window [%d %d], want [2 3]",
			performances[0].PerformanceID, performances[1].PerformanceID)
	}
}

func TestListPerformancesOversizedLimitReturnsAllRows(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	scoring := seedPerformances(t, db)
	repo := NewRepository(db)

	performances, err := repo.ListPerformances(context.Background(), PerformanceFilter{}, 0, 1<<60)
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if len(performances) != len(scoring) {
		t.Fatalf("got %d performances, want %d", len(performances), len(scoring))
	}
}

func TestListPerformancesMinLastChangedDateIsInclusive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedPerformances(t, db)
	repo := NewRepository(db)

	minDate := models.NewDate(2024, time.April, 1)
	performances, err := repo.ListPerformances(context.Background(), PerformanceFilter{MinLastChangedDate: &minDate}, 0, 100)
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if len(performances) != 2 {
		t.Fatalf("got %d performances, want 2", len(performances))
	}
	if performances[0].PerformanceID != 3 {
		t.Fatalf("got first performance %d, want 3", performances[0].PerformanceID)
	}
	if performances[0].FantasyPoints != 22.1 {
		t.Fatalf("fantasy_points = %v, want 22.1", performances[0].FantasyPoints)
	}
}

// Package seed loads the JSON fixture files into the API database.
// Rows that already exist are left untouched, so reseeding is safe.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

// Summary reports the outcome of seeding one entity file.
type Summary struct {
	Entity   string
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

// Seeder inserts fixture records into the database
type Seeder struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewSeeder creates a new Seeder
func NewSeeder(db *sql.DB, clock clockwork.Clock) *Seeder {
	return &Seeder{
		db:    db,
		clock: clock,
	}
}

type leagueRecord struct {
	LeagueID        int    `json:"league_id"`
	LeagueName      string `json:"league_name"`
	ScoringType     string `json:"scoring_type"`
	LastChangedDate string `json:"last_changed_date"`
}

type teamRecord struct {
	TeamID          int    `json:"team_id"`
	TeamName        string `json:"team_name"`
	LeagueID        int    `json:"league_id"`
	LastChangedDate string `json:"last_changed_date"`
}

type playerRecord struct {
	PlayerID        int    `json:"player_id"`
	GsisID          string `json:"gsis_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	LastChangedDate string `json:"last_changed_date"`
}

type performanceRecord struct {
	PerformanceID   int     `json:"performance_id"`
	PlayerID        int     `json:"player_id"`
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate string  `json:"last_changed_date"`
}

type rosterRecord struct {
	TeamID   int `json:"team_id"`
	PlayerID int `json:"player_id"`
}

// Run seeds every fixture file in assetsDir, in foreign key order.
func (s *Seeder) Run(ctx context.Context, assetsDir string) ([]Summary, error) {
	var summaries []Summary

	leagueSummary, err := s.seedLeagues(ctx, assetsDir)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, leagueSummary)

	teamSummary, err := s.seedTeams(ctx, assetsDir)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, teamSummary)

	playerSummary, err := s.seedPlayers(ctx, assetsDir)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, playerSummary)

	performanceSummary, err := s.seedPerformances(ctx, assetsDir)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, performanceSummary)

	rosterSummary, err := s.seedRosters(ctx, assetsDir)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, rosterSummary)

	return summaries, nil
}

func (s *Seeder) seedLeagues(ctx context.Context, assetsDir string) (Summary, error) {
	var records []leagueRecord
	if err := readJSON(filepath.Join(assetsDir, "leagues.json"), &records); err != nil {
		return Summary{Entity: "leagues"}, err
	}

	summary := Summary{Entity: "leagues", Total: len(records)}
	for _, rec := range records {
		date, err := s.dateOrNow(rec.LastChangedDate)
		if err != nil {
			summary.Errors++
			continue
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO league (league_id, league_name, scoring_type, last_changed_date)
			 VALUES (?, ?, ?, ?)`,
			rec.LeagueID, rec.LeagueName, rec.ScoringType, date)
		s.tally(&summary, res, err)
	}
	return summary, nil
}

func (s *Seeder) seedTeams(ctx context.Context, assetsDir string) (Summary, error) {
	var records []teamRecord
	if err := readJSON(filepath.Join(assetsDir, "teams.json"), &records); err != nil {
		return Summary{Entity: "teams"}, err
	}

	summary := Summary{Entity: "teams", Total: len(records)}
	for _, rec := range records {
		date, err := s.dateOrNow(rec.LastChangedDate)
		if err != nil {
			summary.Errors++
			continue
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO team (team_id, team_name, league_id, last_changed_date)
			 VALUES (?, ?, ?, ?)`,
			rec.TeamID, rec.TeamName, rec.LeagueID, date)
		s.tally(&summary, res, err)
	}
	return summary, nil
}

func (s *Seeder) seedPlayers(ctx context.Context, assetsDir string) (Summary, error) {
	var records []playerRecord
	if err := readJSON(filepath.Join(assetsDir, "players.json"), &records); err != nil {
		return Summary{Entity: "players"}, err
	}

	summary := Summary{Entity: "players", Total: len(records)}
	for _, rec := range records {
		date, err := s.dateOrNow(rec.LastChangedDate)
		if err != nil {
			summary.Errors++
			continue
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO player (player_id, gsis_id, first_name, last_name, position, last_changed_date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.PlayerID, rec.GsisID, rec.FirstName, rec.LastName, rec.Position, date)
		s.tally(&summary, res, err)
	}
	return summary, nil
}

func (s *Seeder) seedPerformances(ctx context.Context, assetsDir string) (Summary, error) {
	var records []performanceRecord
	if err := readJSON(filepath.Join(assetsDir, "performances.json"), &records); err != nil {
		return Summary{Entity: "performances"}, err
	}

	summary := Summary{Entity: "performances", Total: len(records)}
	for _, rec := range records {
		date, err := s.dateOrNow(rec.LastChangedDate)
		if err != nil {
			summary.Errors++
			continue
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO performance (performance_id, player_id, week_number, fantasy_points, last_changed_date)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.PerformanceID, rec.PlayerID, rec.WeekNumber, rec.FantasyPoints, date)
		s.tally(&summary, res, err)
	}
	return summary, nil
}

func (s *Seeder) seedRosters(ctx context.Context, assetsDir string) (Summary, error) {
	var records []rosterRecord
	if err := readJSON(filepath.Join(assetsDir, "team_player.json"), &records); err != nil {
		return Summary{Entity: "team_player"}, err
	}

	summary := Summary{Entity: "team_player", Total: len(records)}
	for _, rec := range records {
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO team_player (team_id, player_id) VALUES (?, ?)`,
			rec.TeamID, rec.PlayerID)
		s.tally(&summary, res, err)
	}
	return summary, nil
}

// dateOrNow canonicalizes a fixture date, stamping records that carry
// none with today's date.
func (s *Seeder) dateOrNow(raw string) (string, error) {
	if raw == "" {
		return models.DateOf(s.clock.Now()).String(), nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return "", err
	}
	return date.String(), nil
}

func (s *Seeder) tally(summary *Summary, res sql.Result, err error) {
	if err != nil {
		summary.Errors++
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		summary.Errors++
		return
	}
	if n == 1 {
		summary.Inserted++
	} else {
		summary.Skipped++
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}

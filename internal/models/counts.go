package models

// Counts summarizes how many rows each membership entity holds
type Counts struct {
	LeagueCount int `json:"league_count"`
	TeamCount   int `json:"team_count"`
	PlayerCount int `json:"player_count"`
}

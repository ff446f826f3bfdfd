package models

// Team represents a fantasy team inside an SWC league
type Team struct {
	TeamID          int    `json:"team_id"`
	TeamName        string `json:"team_name"`
	LeagueID        int    `json:"league_id"`
	LastChangedDate Date   `json:"last_changed_date" swaggertype:"string" format:"date"`

	// Players holds the team's current roster, joined through the
	// team_player association table. Always rendered, empty for an
	// unfilled roster.
	Players []Player `json:"players"`
}

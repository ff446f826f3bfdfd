package models

// League represents an SWC fantasy football league
type League struct {
	LeagueID        int    `json:"league_id"`
	LeagueName      string `json:"league_name"`
	ScoringType     string `json:"scoring_type"`
	LastChangedDate Date   `json:"last_changed_date" swaggertype:"string" format:"date"`

	// Teams holds the fantasy teams that belong to the league.
	// Always rendered, empty when the league has no teams yet.
	Teams []Team `json:"teams"`
}

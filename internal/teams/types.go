package teams

import "github.com/sportsworldcentral/swc-api/internal/models"

// TeamFilter represents filtering options for team queries
type TeamFilter struct {
	TeamName           *string
	LeagueID           *int
	MinLastChangedDate *models.Date
}

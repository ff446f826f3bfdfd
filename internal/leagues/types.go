package leagues

import "github.com/sportsworldcentral/swc-api/internal/models"

// LeagueFilter represents filtering options for league queries
type LeagueFilter struct {
	LeagueName         *string
	MinLastChangedDate *models.Date
}

package players

import "github.com/sportsworldcentral/swc-api/internal/models"

// PlayerFilter represents filtering options for player queries
type PlayerFilter struct {
	FirstName          *string
	LastName           *string
	MinLastChangedDate *models.Date
}

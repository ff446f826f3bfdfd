package performances

import "github.com/sportsworldcentral/swc-api/internal/models"

// PerformanceFilter represents filtering options for performance queries
type PerformanceFilter struct {
	MinLastChangedDate *models.Date
}

package models

// Performance represents one player's scoring line for one NFL week,
// with fantasy points computed under SWC league scoring
type Performance struct {
	PerformanceID   int     `json:"performance_id"`
	PlayerID        int     `json:"player_id"`
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate Date    `json:"last_changed_date" swaggertype:"string" format:"date"`
}

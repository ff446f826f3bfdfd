package models

// Player represents an NFL player tracked by the SWC fantasy platform
type Player struct {
	PlayerID        int    `json:"player_id"`
	GsisID          string `json:"gsis_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	LastChangedDate Date   `json:"last_changed_date" swaggertype:"string" format:"date"`
}

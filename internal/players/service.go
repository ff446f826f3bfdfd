package players

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/httputil"
	"github.com/sportsworldcentral/swc-api/internal/metrics"
	"github.com/sportsworldcentral/swc-api/internal/models"
)

// PlayersApp defines what the service layer needs from the players app
type PlayersApp interface {
	ListPlayers(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error)
	GetPlayer(ctx context.Context, playerID int) (*models.Player, error)
}

// Service exposes player read endpoints over HTTP
type Service struct {
	app      PlayersApp
	validate *validator.Validate
}

// NewService creates a new players Service
func NewService(app PlayersApp, validate *validator.Validate) *Service {
	return &Service{
		app:      app,
		validate: validate,
	}
}

// RegisterRoutes mounts the player endpoints on the router. The list
// route answers with and without the trailing slash.
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/v0/players/", s.handleListPlayers)
	r.Get("/v0/players", s.handleListPlayers)
	r.Get("/v0/players/{player_id}", s.handleGetPlayer)
}

// handleListPlayers godoc
// @Summary Get a list of NFL players.
// @Description Get a list of players, optionally filtered by name or last changed date.
// @Tags player
// @Produce json
// @Param skip query int false "The number of items to skip at the beginning of API call." default(0)
// @Param limit query int false "The number of records to return after the skipped records." default(100)
// @Param minimum_last_changed_date query string false "The minimum date of change that you want to return records. Exclude any records changed before this." format(date)
// @Param first_name query string false "The first name of the players to return."
// @Param last_name query string false "The last name of the players to return."
// @Success 200 {array} models.Player "A list of NFL players."
// @Failure 422 {object} httputil.Detail "Invalid query parameters"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/players/ [get]
func (s *Service) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	params, err := httputil.ParseListParams(r, s.validate)
	if err != nil {
		httputil.RespondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	minDate, err := httputil.ParseDateParam(r, "minimum_last_changed_date")
	if err != nil {
		httputil.RespondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	filter := PlayerFilter{
		FirstName:          httputil.OptionalString(r, "first_name"),
		LastName:           httputil.OptionalString(r, "last_name"),
		MinLastChangedDate: minDate,
	}

	players, err := s.app.ListPlayers(r.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, players)
}

// handleGetPlayer godoc
// @Summary Get one player using the Player ID, which is internal to SWC.
// @Description If you have an SWC Player ID of a player from another API call such as the player list, you can call this API using the player ID.
// @Tags player
// @Produce json
// @Param player_id path int true "The SWC Player ID for the player that should be returned."
// @Success 200 {object} models.Player "One NFL player"
// @Failure 404 {object} httputil.Detail "Player not found"
// @Failure 422 {object} httputil.Detail "Invalid player id"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/players/{player_id} [get]
func (s *Service) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := httputil.ParseIntParam("player_id", chi.URLParam(r, "player_id"))
	if err != nil {
		httputil.RespondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	player, err := s.app.GetPlayer(r.Context(), playerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, player)
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httputil.RespondDetail(w, http.StatusNotFound, "Player not found")
		return
	}
	metrics.QueryErrorsTotal.Inc()
	httputil.RespondDetail(w, http.StatusInternalServerError, "internal server error")
}

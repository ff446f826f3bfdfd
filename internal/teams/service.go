package teams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/httputil"
	"github.com/sportsworldcentral/swc-api/internal/metrics"
	"github.com/sportsworldcentral/swc-api/internal/models"
)

// TeamsApp defines what the service layer needs from the teams app
type TeamsApp interface {
	ListTeams(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error)
}

// Service exposes team read endpoints over HTTP
type Service struct {
	app      TeamsApp
	validate *validator.Validate
}

// NewService creates a new teams Service
func NewService(app TeamsApp, validate *validator.Validate) *Service {
	return &Service{
		app:      app,
		validate: validate,
	}
}

// RegisterRoutes mounts the team endpoints on the router. The list
// route answers with and without the trailing slash.
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/v0/teams/", s.handleListTeams)
	r.Get("/v0/teams", s.handleListTeams)
}

// handleListTeams godoc
// @Summary Get fantasy teams.
// @Description Get a list of fantasy teams, optionally filtered by team name or SWC League ID.
// @Tags membership
// @Produce json
// @Param skip query int false "The number of items to skip at the beginning of API call." default(0)
// @Param limit query int false "The number of records to return after the skipped records." default(100)
// @Param minimum_last_changed_date query string false "The minimum date of change that you want to return records. Exclude any records changed before this." format(date)
// @Param team_name query string false "The name of the teams to return."
// @Param league_id query int false "The SWC League ID of the league for which to return teams."
// @Success 200 {array} models.Team "A list of teams"
// @Failure 422 {object} httputil.Detail "Invalid query parameters"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/teams/ [get]
func (s *Service) handleListTeams(w http.ResponseWriter, r *http.Request) {
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
	leagueID, err := httputil.OptionalInt(r, "league_id")
	if err != nil {
		httputil.RespondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	filter := TeamFilter{
		TeamName:           httputil.OptionalString(r, "team_name"),
		LeagueID:           leagueID,
		MinLastChangedDate: minDate,
	}

	teams, err := s.app.ListTeams(r.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		metrics.QueryErrorsTotal.Inc()
		httputil.RespondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, teams)
}

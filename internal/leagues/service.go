package leagues

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

// LeaguesApp defines what the service layer needs from the leagues app
type LeaguesApp interface {
	ListLeagues(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error)
	GetLeague(ctx context.Context, leagueID int) (*models.League, error)
}

// Service exposes league read endpoints over HTTP
type Service struct {
	app      LeaguesApp
	validate *validator.Validate
}

// NewService creates a new leagues Service
func NewService(app LeaguesApp, validate *validator.Validate) *Service {
	return &Service{
		app:      app,
		validate: validate,
	}
}

// RegisterRoutes mounts the league endpoints on the router. The list
// route answers with and without the trailing slash.
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/v0/leagues", s.handleListLeagues)
	r.Get("/v0/leagues/", s.handleListLeagues)
	r.Get("/v0/leagues/{league_id}", s.handleGetLeague)
}

// handleListLeagues godoc
// @Summary Get fantasy leagues
// @Description Get a list of fantasy leagues, optionally filtered by league name or last changed date.
// @Tags membership
// @Produce json
// @Param skip query int false "The number of items to skip at the beginning of API call." default(0)
// @Param limit query int false "The number of records to return after the skipped records." default(100)
// @Param minimum_last_changed_date query string false "The minimum date of change that you want to return records. Exclude any records changed before this." format(date)
// @Param league_name query string false "The name of the leagues to return."
// @Success 200 {array} models.League "A list of leagues"
// @Failure 422 {object} httputil.Detail "Invalid query parameters"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/leagues [get]
func (s *Service) handleListLeagues(w http.ResponseWriter, r *http.Request) {
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

	filter := LeagueFilter{
		LeagueName:         httputil.OptionalString(r, "league_name"),
		MinLastChangedDate: minDate,
	}

	leagues, err := s.app.ListLeagues(r.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, leagues)
}

// handleGetLeague godoc
// @Summary Get one fantasy league using the League ID, which is internal to SWC.
// @Description If you have an SWC League ID of a league from another API call such as the league list, you can call this API using the league ID.
// @Tags membership
// @Produce json
// @Param league_id path int true "The SWC League ID for the league to be returned."
// @Success 200 {object} models.League "A league"
// @Failure 404 {object} httputil.Detail "League not found"
// @Failure 422 {object} httputil.Detail "Invalid league id"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/leagues/{league_id} [get]
func (s *Service) handleGetLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httputil.ParseIntParam("league_id", chi.URLParam(r, "league_id"))
	if err != nil {
		httputil.RespondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	league, err := s.app.GetLeague(r.Context(), leagueID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, league)
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httputil.RespondDetail(w, http.StatusNotFound, "League not found")
		return
	}
	metrics.QueryErrorsTotal.Inc()
	httputil.RespondDetail(w, http.StatusInternalServerError, "internal server error")
}

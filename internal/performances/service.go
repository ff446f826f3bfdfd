package performances

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/httputil"
	"github.com/sportsworldcentral/swc-api/internal/metrics"
	"github.com/sportsworldcentral/swc-api/internal/models"
)

// PerformancesApp defines what the service layer needs from the performances app
type PerformancesApp interface {
	ListPerformances(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error)
}

// Service exposes performance read endpoints over HTTP
type Service struct {
	app      PerformancesApp
	validate *validator.Validate
}

// NewService creates a new performances Service
func NewService(app PerformancesApp, validate *validator.Validate) *Service {
	return &Service{
		app:      app,
		validate: validate,
	}
}

// RegisterRoutes mounts the performance endpoints on the router. The
// list route answers with and without the trailing slash.
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/v0/performances/", s.handleListPerformances)
	r.Get("/v0/performances", s.handleListPerformances)
}

// handleListPerformances godoc
// @Summary Get performance statistics for NFL players
// @Description Get a list of player performances optionally filtered by the last changed date.
// @Tags scoring
// @Produce json
// @Param skip query int false "The number of items to skip at the beginning of API call." default(0)
// @Param limit query int false "The number of records to return after the skipped records." default(100)
// @Param minimum_last_changed_date query string false "The minimum date of change that you want to return records. Exclude any records changed before this." format(date)
// @Success 200 {array} models.Performance "A list of performances"
// @Failure 422 {object} httputil.Detail "Invalid query parameters"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/performances/ [get]
func (s *Service) handleListPerformances(w http.ResponseWriter, r *http.Request) {
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

	filter := PerformanceFilter{MinLastChangedDate: minDate}

	performances, err := s.app.ListPerformances(r.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		metrics.QueryErrorsTotal.Inc()
		httputil.RespondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, performances)
}

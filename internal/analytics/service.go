package analytics

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportsworldcentral/swc-api/internal/httputil"
	"github.com/sportsworldcentral/swc-api/internal/metrics"
	"github.com/sportsworldcentral/swc-api/internal/models"
)

const healthMessage = "API health check successful"

// HealthResponse is the health check response body.
type HealthResponse struct {
	Message string `json:"message"`
}

// AnalyticsApp defines what the service layer needs from the analytics app
type AnalyticsApp interface {
	GetCounts(ctx context.Context) (*models.Counts, error)
}

// Service exposes the health check and counts endpoints over HTTP
type Service struct {
	app AnalyticsApp
}

// NewService creates a new analytics Service
func NewService(app AnalyticsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the analytics endpoints on the router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHealthCheck)
	r.Get("/v0/counts", s.handleGetCounts)
}

// handleHealthCheck godoc
// @Summary Verify that the API is up.
// @Description Returns 'API health check successful' if the API is up.
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.HealthResponse "API status"
// @Router / [get]
func (s *Service) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, HealthResponse{Message: healthMessage})
}

// handleGetCounts godoc
// @Summary Get counts.
// @Description Get the count of leagues, teams, and players.
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Counts "System counts"
// @Failure 500 {object} httputil.Detail "Internal server error"
// @Router /v0/counts [get]
func (s *Service) handleGetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.app.GetCounts(r.Context())
	if err != nil {
		metrics.QueryErrorsTotal.Inc()
		httputil.RespondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, counts)
}

package performances

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := openTestDB(t)
	seedPerformances(t, db)

	service := NewService(NewApp(NewRepository(db)), validator.New())
	router := chi.NewRouter()
	service.RegisterRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestListPerformancesEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v0/performances/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var performances []models.Performance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&performances))
	require.Len(t, performances, 4)
	assert.Equal(t, 1, performances[0].PerformanceID)
	assert.Equal(t, "1", performances[0].WeekNumber)
	assert.Equal(t, 18.7, performances[0].FantasyPoints)
}

func TestListPerformancesEndpointAcceptsBarePath(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v0/performances")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var performances []models.Performance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&performances))
	assert.Len(t, performances, 4)
}

func TestListPerformancesEndpointFiltersByDate(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v0/performances/?minimum_last_changed_date=2024-04-01&limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var performances []models.Performance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&performances))
	require.Len(t, performances, 1)
	assert.Equal(t, 3, performances[0].PerformanceID)
}

func TestListPerformancesEndpointRejectsBadParams(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v0/performances/?skip=all")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

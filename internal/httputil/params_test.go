package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParamsDefaults(t *testing.T) {
	validate := validator.New()
	r := httptest.NewRequest("GET", "/v0/players/", nil)

	params, err := ParseListParams(r, validate)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Skip)
	assert.Equal(t, 100, params.Limit)
}

func TestParseListParamsExplicit(t *testing.T) {
	validate := validator.New()
	r := httptest.NewRequest("GET", "/v0/players/?skip=25&limit=5", nil)

	params, err := ParseListParams(r, validate)
	require.NoError(t, err)
	assert.Equal(t, 25, params.Skip)
	assert.Equal(t, 5, params.Limit)
}

func TestParseListParamsRejectsNonInteger(t *testing.T) {
	validate := validator.New()

	r := httptest.NewRequest("GET", "/v0/players/?skip=abc", nil)
	_, err := ParseListParams(r, validate)
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/v0/players/?limit=ten", nil)
	_, err = ParseListParams(r, validate)
	assert.Error(t, err)
}

func TestParseListParamsRejectsOutOfRange(t *testing.T) {
	validate := validator.New()

	r := httptest.NewRequest("GET", "/v0/players/?skip=-1", nil)
	_, err := ParseListParams(r, validate)
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/v0/players/?limit=0", nil)
	_, err = ParseListParams(r, validate)
	assert.Error(t, err)
}

func TestParseIntParam(t *testing.T) {
	n, err := ParseIntParam("player_id", "1001")
	require.NoError(t, err)
	assert.Equal(t, 1001, n)

	_, err = ParseIntParam("player_id", "not-a-number")
	assert.Error(t, err)
}

func TestParseDateParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/v0/players/?minimum_last_changed_date=2024-04-01", nil)
	d, err := ParseDateParam(r, "minimum_last_changed_date")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-04-01", d.String())

	r = httptest.NewRequest("GET", "/v0/players/", nil)
	d, err = ParseDateParam(r, "minimum_last_changed_date")
	require.NoError(t, err)
	assert.Nil(t, d)

	r = httptest.NewRequest("GET", "/v0/players/?minimum_last_changed_date=04-01-2024", nil)
	_, err = ParseDateParam(r, "minimum_last_changed_date")
	assert.Error(t, err)
}

func TestOptionalInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/v0/teams/?league_id=5001", nil)
	n, err := OptionalInt(r, "league_id")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 5001, *n)

	r = httptest.NewRequest("GET", "/v0/teams/", nil)
	n, err = OptionalInt(r, "league_id")
	require.NoError(t, err)
	assert.Nil(t, n)

	r = httptest.NewRequest("GET", "/v0/teams/?league_id=zzz", nil)
	_, err = OptionalInt(r, "league_id")
	assert.Error(t, err)
}

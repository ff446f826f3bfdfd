package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/models"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// ListParams is the pagination window shared by every list endpoint.
type ListParams struct {
	Skip  int `validate:"gte=0"`
	Limit int `validate:"gte=1"`
}

// ParseListParams reads skip and limit from the query string. Missing
// values fall back to the 0/100 default window.
func ParseListParams(r *http.Request, validate *validator.Validate) (ListParams, error) {
	params := ListParams{Skip: defaultSkip, Limit: defaultLimit}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.New("query parameter skip must be an integer")
		}
		params.Skip = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.New("query parameter limit must be an integer")
		}
		params.Limit = n
	}

	if err := validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return params, fmt.Errorf("query parameter %s is out of range", strings.ToLower(verrs[0].Field()))
		}
		return params, fmt.Errorf("failed to validate query parameters: %w", err)
	}
	return params, nil
}

// ParseIntParam parses a numeric path or query parameter value.
func ParseIntParam(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s must be an integer", name)
	}
	return n, nil
}

// ParseDateParam reads an optional date query parameter. A missing
// value returns nil.
func ParseDateParam(r *http.Request, name string) (*models.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be a date in YYYY-MM-DD form", name)
	}
	return &d, nil
}

// OptionalString reads an optional query parameter. A missing value
// returns nil.
func OptionalString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// OptionalInt reads an optional integer query parameter. A missing
// value returns nil.
func OptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be an integer", name)
	}
	return &n, nil
}

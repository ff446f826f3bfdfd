// Package httputil provides shared JSON response and query parameter
// helpers for the HTTP services.
package httputil

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Detail is the wire shape of every error response body.
type Detail struct {
	Detail string `json:"detail"`
}

// RespondJSON writes data as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("failed to encode JSON response")
	}
}

// RespondDetail writes an error response body of the form
// {"detail": "..."} with the given status code.
func RespondDetail(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, Detail{Detail: detail})
}

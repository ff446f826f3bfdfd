// Package migrations embeds the schema migration files for the API
// database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose SQL migrations for the auth service.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

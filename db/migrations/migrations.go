// Package migrations embeds the goose migrations that create the session and
// verification tables.
package migrations

import "embed"

// FS holds the migration files at its root.
//
//go:embed *.sql
var FS embed.FS

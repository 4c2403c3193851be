// Package migrations holds the embedded SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

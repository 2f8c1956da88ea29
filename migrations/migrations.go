// Package migrations embeds the SQL schema applied at startup.
package migrations

import "embed"

// FS holds the up and down migration files.
//
//go:embed *.sql
var FS embed.FS

// InitialSchema is the file name of the first up migration.
const InitialSchema = "001_initial_schema.up.sql"

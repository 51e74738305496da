// Package migrations embeds the SQL migration files so the schema can be
// applied from the binary itself, without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

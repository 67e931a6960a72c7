// Package migrations holds the schema of the drafts database. Files are
// named NNN_name.up.sql and applied in order by the sqlite store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the versioned schema scripts, one directory per
// goose dialect.
package migrations

import "embed"

//go:embed sqlite3/*.sql mysql/*.sql postgres/*.sql
var FS embed.FS

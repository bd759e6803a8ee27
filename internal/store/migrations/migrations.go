// Package migrations embeds the goose migrations that create the key-value
// table, one directory per SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql mysql/*.sql
var Migrations embed.FS

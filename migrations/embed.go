package migrations

import "embed"

// Files holds the forward-only SQL migrations for the catalog store.
//
//go:embed *.sql
var Files embed.FS

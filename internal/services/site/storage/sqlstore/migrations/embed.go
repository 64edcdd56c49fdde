// Package migrations contains embedded SQL migrations per dialect.
package migrations

import "embed"

// FS holds one directory of migrations per supported driver.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

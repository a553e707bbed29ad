package storage

import "embed"

// migrationFiles holds the SQLite schema, one NNN_name.sql file per version
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

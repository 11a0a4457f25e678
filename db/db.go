package db

import "embed"

// Migrations holds the per-engine schema files applied at startup.
//
//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql migrations/postgres/*.sql
var Migrations embed.FS

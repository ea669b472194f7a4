// Package db holds the relational schema the service caches in front of.
package db

import "embed"

// MigrationsDir is the directory inside Migrations holding goose SQL files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS

// Package secondchance holds assets shared by the service binaries.
package secondchance

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

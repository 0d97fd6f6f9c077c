// Package migrations embeds the goose migrations for the local sqlite vault.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

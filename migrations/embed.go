// Package migrations embebe los archivos SQL de goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

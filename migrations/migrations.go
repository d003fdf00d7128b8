// Package migrations embebe los archivos SQL de goose para ejecutarlos al
// arrancar el binario sin depender del directorio de trabajo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package static Встроенные стили и скрипты HTML-представлений консоли.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

// Prefix Путь, по которому раздаются файлы.
const Prefix = "/static/"

//go:embed assets
var assetsFS embed.FS

// Handler Раздаёт встроенные файлы по пути Prefix.
func Handler() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	return http.StripPrefix(Prefix, http.FileServer(http.FS(sub)))
}

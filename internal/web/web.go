// Package web serves the embedded single-page browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler returns an http.Handler serving the client assets. Unknown paths
// fall back to the file server's 404; the client itself lives at /.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The subtree is embedded at build time; a failure here is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

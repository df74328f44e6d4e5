// Package http holds transport helpers shared by web file servers.
package http

import (
	"net/http"
	"path"
	"strings"
)

// staticMimeTypes covers extensions the platform mime table does not know.
// The viewer's baked model and motion files are opaque binaries.
var staticMimeTypes = map[string]string{
	".bpmx": "application/octet-stream",
	".bvmd": "application/octet-stream",
	".pmx":  "application/octet-stream",
	".vmd":  "application/octet-stream",
	".mp3":  "audio/mpeg",
	".webp": "image/webp",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
}

// StaticMime returns the content-type hint for name, or "".
func StaticMime(name string) string {
	return staticMimeTypes[strings.ToLower(path.Ext(name))]
}

// WithStaticMime attaches explicit content-type hints for known static assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mime := StaticMime(r.URL.Path); mime != "" {
			w.Header().Set("Content-Type", mime)
		}
		next.ServeHTTP(w, r)
	})
}

package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterStaticRoutes serves the built client from dir. Unknown paths fall
// back to index.html so the client router can resolve them.
func RegisterStaticRoutes(r chi.Router, dir string) {
	fileServer := mimeTypeMiddleware(http.FileServer(http.Dir(dir)))
	index := filepath.Join(dir, "index.html")

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+req.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, index)
	})
}

// mimeTypeMiddleware sets the type Go's table lacks for ES modules.
func mimeTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(filepath.Ext(r.URL.Path), ".mjs") {
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		}
		next.ServeHTTP(w, r)
	})
}

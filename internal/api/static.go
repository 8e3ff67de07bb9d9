package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// spaHandler serves the web UI bundle from a plain directory on disk
// (DRASHTA_ASSETS_DIR), not an embedded filesystem: the bundle's content is
// an external collaborator, not something this repository builds or ships
// pre-baked. For paths with no matching file, it falls back to index.html
// so client-side routes survive a hard reload.
type spaHandler struct {
	dir      string
	staticFS http.Handler
}

func newSPAHandler(dir string) *spaHandler {
	return &spaHandler{
		dir:      dir,
		staticFS: http.StripPrefix("/app/", http.FileServer(http.Dir(dir))),
	}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/app/")
	if path == "" || path == "/" {
		path = "index.html"
	}

	if _, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(path))); err == nil {
		h.staticFS.ServeHTTP(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

package http

import (
	"net/http"
	"path"

	"github.com/paulkoehlerdev/GmapsTool/static"
)

var staticFileTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".svg":  "image/svg+xml",
}

// WebPageRoute serves the preview page and its assets. Anything but the
// listed file types is forbidden.
func WebPageRoute(mux *http.ServeMux) {
	files := http.FileServerFS(static.FS)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			contentType, ok := staticFileTypes[path.Ext(req.URL.Path)]
			if !ok {
				http.Error(w, "403 Forbidden", http.StatusForbidden)
				return
			}
			w.Header().Set("Content-Type", contentType)
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, req)
	})
}

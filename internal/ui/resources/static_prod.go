//go:build !dev

package resources

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns the static assets rooted at the static directory.
func FS() fs.FS {
	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("resources: embedded static directory missing: " + err.Error())
	}
	return fsys
}

// SourceDir returns the on-disk asset directory. Embedded builds have none.
func SourceDir() string {
	return ""
}

// Handler returns an HTTP handler for serving static files.
// In production mode, files are embedded in the binary.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Embedded assets never change for the lifetime of a binary
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.StripPrefix(URLPrefix, fileServer).ServeHTTP(w, r)
	})
}

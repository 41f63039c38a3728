//go:build dev

package resources

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// SourceDir derives the absolute path to the static directory relative to
// this source file, regardless of where the binary is run from.
func SourceDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// FS returns the static assets straight from disk.
func FS() fs.FS {
	return os.DirFS(SourceDir())
}

// Handler returns an HTTP handler for serving static files.
// In dev mode, files are served from the filesystem and never cached.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		http.StripPrefix(URLPrefix, fileServer).ServeHTTP(w, r)
	})
}

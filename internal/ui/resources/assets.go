// Package resources provides the static assets of the UI: the stylesheet and
// anything else served under /static/.
package resources

import "strings"

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// URLPrefix is the URL path under which assets are served.
const URLPrefix = "/static/"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return URLPrefix + strings.TrimPrefix(path, "/")
}

// FromDisk reports whether assets are read from the source tree on every
// request rather than embedded at build time.
func FromDisk() bool {
	return SourceDir() != ""
}

package site

import "errors"

// Build errors
var (
	ErrNoOutputDir = errors.New("output directory is required")
	ErrMinifyCSS   = errors.New("failed to minify stylesheet")
)

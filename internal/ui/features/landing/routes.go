// Package landing serves the landing page and its Markdown rendition.
package landing

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
)

// Route paths served by the landing feature.
const (
	PagePath     = "/"
	MarkdownPath = "/index.md"
)

// SetupRoutes configures routes for the landing feature.
func SetupRoutes(
	router chi.Router,
	meta pages.Meta,
	docsURL string,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(meta, docsURL, logger)

	router.Get(PagePath, handlers.LandingPage)
	router.Get(MarkdownPath, handlers.LandingMarkdown)
	router.Get(pages.DocsPath, handlers.Docs)

	return nil
}

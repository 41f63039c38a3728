package commands

import (
	"errors"

	"github.com/leapstack-labs/anatomy/internal/cli/config"
	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
)

// ErrUnknownFormat is returned for a --format value other than auto, html or
// markdown.
var ErrUnknownFormat = errors.New("unknown output format")

// pageMeta builds the document metadata from the site config.
func pageMeta(cfg *config.Config) pages.Meta {
	return pages.Meta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
	}
}

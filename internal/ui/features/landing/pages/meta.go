package pages

import "github.com/leapstack-labs/anatomy/internal/ui/resources"

// Default document metadata.
const (
	DefaultTitle       = "The Anatomy of Excellence"
	DefaultDescription = "A living document on the principles of building enduring software."
	ReloadPath         = "/reload"
	DatastarScriptURL  = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"
)

// StylesheetPath is the URL of the site stylesheet.
var StylesheetPath = resources.StaticPath("styles.css")

// Meta holds the document-level settings of a page render. It never changes
// the page body.
type Meta struct {
	Title       string
	Description string
	// Dev adds the live-reload hook used by the development server.
	Dev bool
}

// DefaultMeta returns Meta with the default title and description.
func DefaultMeta() Meta {
	return Meta{
		Title:       DefaultTitle,
		Description: DefaultDescription,
	}
}

// withDefaults fills empty fields from DefaultMeta.
func (m Meta) withDefaults() Meta {
	d := DefaultMeta()
	if m.Title == "" {
		m.Title = d.Title
	}
	if m.Description == "" {
		m.Description = d.Description
	}
	return m
}

package landing

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/leapstack-labs/anatomy/internal/site"
	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
)

// Handlers provides HTTP handlers for the landing feature.
type Handlers struct {
	meta    pages.Meta
	docsURL string
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance. An empty docsURL leaves the
// docs route unresolved.
func NewHandlers(meta pages.Meta, docsURL string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		meta:    meta,
		docsURL: docsURL,
		logger:  logger,
	}
}

// LandingPage renders the full landing document.
func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	// Render before writing so a failure still yields a clean 500
	var buf bytes.Buffer
	if err := pages.Page(h.meta).Render(r.Context(), &buf); err != nil {
		h.logger.Error("render landing page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// LandingMarkdown renders the landing body as Markdown.
func (h *Handlers) LandingMarkdown(w http.ResponseWriter, r *http.Request) {
	md, err := site.RenderMarkdown(r.Context())
	if err != nil {
		h.logger.Error("render landing markdown", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(md)
}

// Docs resolves the call-to-action target. Redirects to the configured docs
// site, or 404 when none is configured.
func (h *Handlers) Docs(w http.ResponseWriter, r *http.Request) {
	if h.docsURL == "" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, h.docsURL, http.StatusFound)
}

package landing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/anatomy/internal/testutil"
	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestRouter(t *testing.T, docsURL string) chi.Router {
	t.Helper()

	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, pages.DefaultMeta(), docsURL, testutil.NewTestLogger(t)))
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Landing page
// =============================================================================

func TestLandingPage(t *testing.T) {
	r := setupTestRouter(t, "")

	rec := get(t, r, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>The Anatomy of Excellence</title>",
		`href="/docs"`,
		"Begin the Journey",
		"<footer",
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}
	assert.NotContains(t, body, pages.ReloadPath)
}

func TestLandingPage_ByteIdentical(t *testing.T) {
	r := setupTestRouter(t, "")

	first := get(t, r, "/").Body.String()
	second := get(t, r, "/").Body.String()
	assert.Equal(t, first, second)
}

func TestLandingPage_DevMeta(t *testing.T) {
	h := NewHandlers(pages.Meta{Dev: true}, "", nil)

	rec := httptest.NewRecorder()
	h.LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="reload"`)
}

func TestLandingMarkdown(t *testing.T) {
	r := setupTestRouter(t, "")

	rec := get(t, r, "/index.md")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/markdown"))
	assert.Contains(t, rec.Body.String(), "# The Anatomy of Excellence")
	assert.NotContains(t, rec.Body.String(), "<div")
}

// =============================================================================
// Docs route
// =============================================================================

func TestDocs(t *testing.T) {
	tests := []struct {
		name         string
		docsURL      string
		wantStatus   int
		wantLocation string
	}{
		{name: "no docs site configured", docsURL: "", wantStatus: http.StatusNotFound},
		{
			name:         "redirects to docs site",
			docsURL:      "https://docs.example.com/",
			wantStatus:   http.StatusFound,
			wantLocation: "https://docs.example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupTestRouter(t, tt.docsURL)

			rec := get(t, r, "/docs")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

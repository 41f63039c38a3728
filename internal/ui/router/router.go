// Package router sets up HTTP routes for the UI server.
package router

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	landingFeature "github.com/leapstack-labs/anatomy/internal/ui/features/landing"
	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
	"github.com/leapstack-labs/anatomy/internal/ui/notifier"
	"github.com/leapstack-labs/anatomy/internal/ui/resources"
)

// Endpoint paths outside the landing feature.
const (
	HealthPath    = "/healthz"
	HotReloadPath = "/hotreload"
)

// Options holds what the routes need from the server.
type Options struct {
	Meta    pages.Meta
	DocsURL string
	// Notify is required when Dev is set.
	Notify *notifier.Notifier
	Dev    bool
	Logger *slog.Logger
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	// Hot reload endpoints for dev mode
	if opts.Dev && opts.Notify != nil {
		setupReload(router, opts.Notify, opts.Logger)
	}

	// Static assets
	router.Handle(resources.URLPrefix+"*", resources.Handler())

	router.Get(HealthPath, health)

	meta := opts.Meta
	meta.Dev = opts.Dev && opts.Notify != nil
	if err := landingFeature.SetupRoutes(router, meta, opts.DocsURL, opts.Logger); err != nil {
		return err
	}

	return nil
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// setupReload wires the browser reload stream. Each open page holds a
// /reload stream and reloads itself on the next broadcast.
func setupReload(router chi.Router, notify *notifier.Notifier, logger *slog.Logger) {
	router.Get(pages.ReloadPath, func(w http.ResponseWriter, r *http.Request) {
		updates, cancel := notify.Subscribe()
		defer cancel()

		sse := datastar.NewSSE(w, r)
		select {
		case <-updates:
			if err := sse.ExecuteScript("window.location.reload()"); err != nil {
				logger.Debug("reload stream closed", "error", err)
			}
		case <-r.Context().Done():
		}
	})

	router.Get(HotReloadPath, func(w http.ResponseWriter, _ *http.Request) {
		n := notify.Broadcast()
		logger.Debug("hot reload triggered", "clients", n)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// Package ui serves the landing page over HTTP.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
	"github.com/leapstack-labs/anatomy/internal/ui/notifier"
	"github.com/leapstack-labs/anatomy/internal/ui/resources"
	"github.com/leapstack-labs/anatomy/internal/ui/router"
)

const (
	shutdownTimeout = 5 * time.Second
	debounceDelay   = 100 * time.Millisecond
)

// Server is the landing page server.
type Server struct {
	port     int
	dev      bool
	docsURL  string
	watchDir string
	meta     pages.Meta
	logger   *slog.Logger
	notifier *notifier.Notifier

	mu   sync.Mutex
	addr net.Addr
}

// Config holds configuration for the UI server.
type Config struct {
	// Port 0 picks a free port.
	Port    int
	Dev     bool
	DocsURL string
	// WatchDir is watched for changes in dev mode. Defaults to the on-disk
	// static directory when the binary is built with the dev tag.
	WatchDir string
	Meta     pages.Meta
	Logger   *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watchDir := cfg.WatchDir
	if watchDir == "" {
		watchDir = resources.SourceDir()
	}

	return &Server{
		port:     cfg.Port,
		dev:      cfg.Dev,
		docsURL:  cfg.DocsURL,
		watchDir: watchDir,
		meta:     cfg.Meta,
		logger:   logger,
		notifier: notifier.New(),
	}
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, router.Options{
		Meta:    s.meta,
		DocsURL: s.docsURL,
		Notify:  s.notifier,
		Dev:     s.IsDev(),
		Logger:  s.logger,
	}); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	port := ln.Addr().(*net.TCPAddr).Port
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", port), "dev", s.IsDev())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.IsDev() && !resources.FromDisk() {
		s.logger.Warn("static assets are embedded in this binary; edits reload open pages but are not served, rebuild with -tags dev to serve assets from disk",
			"watch_dir", s.watchDir)
	}

	if s.IsDev() && s.watchDir != "" {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Addr returns the listening address once Serve has bound, or nil.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// IsDev reports whether the live-reload endpoints are enabled.
func (s *Server) IsDev() bool {
	return s.dev
}

// Notifier returns the server's notifier for reload broadcasts.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles broadcasts a reload whenever a file under watchDir is written or
// created. Bursts of events collapse into one reload.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.watchDir); err != nil {
		// keep serving without reloads
		s.logger.Error("failed to watch directory", "dir", s.watchDir, "error", err)
	} else {
		s.logger.Debug("watching for changes", "dir", s.watchDir)
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New directories need their own watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchDirRecursive(watcher, event.Name)
				}
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				n := s.notifier.Broadcast()
				s.logger.Debug("file changed, reloading clients", "file", name, "clients", n)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

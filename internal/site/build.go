package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
	"github.com/leapstack-labs/anatomy/internal/ui/resources"
)

// Output file names, relative to the output directory.
const (
	IndexHTML     = "index.html"
	IndexMarkdown = "index.md"
	StaticDir     = "static"
)

// Options configures a static build.
type Options struct {
	OutputDir string
	Minify    bool
	Meta      pages.Meta
	// Assets defaults to the UI's static assets.
	Assets fs.FS
	Logger *slog.Logger
}

// Result describes a finished build.
type Result struct {
	OutputDir string
	// Files are the written paths relative to OutputDir, sorted.
	Files []string
}

// Build writes the landing page and its assets to opts.OutputDir. Existing
// files are overwritten; running Build twice produces identical output.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	if opts.Assets == nil {
		opts.Assets = resources.FS()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// A static artifact never carries the dev reload hook
	meta := opts.Meta
	meta.Dev = false

	if err := os.MkdirAll(opts.OutputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	result := &Result{OutputDir: opts.OutputDir}

	htmlDoc, err := RenderHTML(ctx, meta)
	if err != nil {
		return nil, err
	}
	if err := writeFile(opts.OutputDir, IndexHTML, htmlDoc); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexHTML)

	md, err := RenderMarkdown(ctx)
	if err != nil {
		return nil, err
	}
	if err := writeFile(opts.OutputDir, IndexMarkdown, md); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexMarkdown)

	assets, err := copyAssets(ctx, opts.Assets, opts.OutputDir, opts.Minify)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, assets...)

	sort.Strings(result.Files)
	logger.Debug("static build complete", "output", opts.OutputDir, "files", len(result.Files))

	return result, nil
}

// copyAssets copies every asset into <out>/static, minifying stylesheets
// when minify is set.
func copyAssets(ctx context.Context, assets fs.FS, outDir string, minify bool) ([]string, error) {
	var written []string

	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", p, err)
		}

		if minify && strings.EqualFold(path.Ext(p), ".css") {
			data, err = MinifyCSS(data)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}

		rel := path.Join(StaticDir, p)
		if err := writeFile(outDir, rel, data); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	return written, nil
}

// MinifyCSS minifies a stylesheet with esbuild.
func MinifyCSS(css []byte) ([]byte, error) {
	result := api.Transform(string(css), api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LogLevel:         api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var msgs []string
		for _, e := range result.Errors {
			if e.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%d:%d: %s", e.Location.Line, e.Location.Column, e.Text))
			} else {
				msgs = append(msgs, e.Text)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrMinifyCSS, strings.Join(msgs, "; "))
	}

	return result.Code, nil
}

func writeFile(outDir, rel string, data []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

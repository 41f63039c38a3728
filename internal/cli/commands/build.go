package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/anatomy/internal/cli/config"
	"github.com/leapstack-labs/anatomy/internal/cli/output"
	"github.com/leapstack-labs/anatomy/internal/site"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the landing page into a static directory",
		Long: `Write the landing page as a static site:

  <output>/index.html   the page
  <output>/index.md     the page as Markdown
  <output>/static/      stylesheet and other assets

Existing files are overwritten; repeated builds produce identical output.`,
		Example: `  # Build into ./public
  anatomy build

  # Build minified into ./dist
  anatomy build --output dist --minify`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutputDir, "Output directory")
	cmd.Flags().Bool("minify", false, "Minify the stylesheet")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	result, err := site.Build(cmd.Context(), site.Options{
		OutputDir: cfg.Build.Output,
		Minify:    cfg.Build.Minify,
		Meta:      pageMeta(cfg),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	entries := make([]output.FileEntry, 0, len(result.Files))
	for _, f := range result.Files {
		info, err := os.Stat(filepath.Join(result.OutputDir, filepath.FromSlash(f)))
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", f, err)
		}
		entries = append(entries, output.FileEntry{Path: f, Size: info.Size()})
	}

	r := output.NewRenderer(cmd.OutOrStdout())
	r.FileTable(entries)
	r.Success("Built %d files into %s", len(result.Files), result.OutputDir)
	return nil
}

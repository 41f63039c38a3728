package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/anatomy/internal/cli/config"
	"github.com/leapstack-labs/anatomy/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Long: `Start a local web server for the landing page.

Routes:
  /           the landing page
  /index.md   the page as Markdown
  /docs       redirect to the configured docs site
  /healthz    health check

With --dev, open pages reload themselves whenever a file under the watch
directory changes.`,
		Example: `  # Serve on the default port
  anatomy serve

  # Serve on a custom port with live reload
  anatomy serve --port 3000 --dev --watch-dir ./internal/ui/resources/static

  # Send the call-to-action to an external docs site
  anatomy serve --docs-url https://docs.example.com`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().Int("port", config.DefaultPort, "Port to serve on")
	cmd.Flags().Bool("dev", false, "Enable live reload")
	cmd.Flags().String("docs-url", "", "Redirect target for /docs (404 when empty)")
	cmd.Flags().String("watch-dir", "", "Directory watched for live reload (default: the static assets source)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	server := ui.NewServer(ui.Config{
		Port:     cfg.UI.Port,
		Dev:      cfg.UI.Dev,
		DocsURL:  cfg.UI.DocsURL,
		WatchDir: cfg.UI.WatchDir,
		Meta:     pageMeta(cfg),
		Logger:   logger,
	})

	return server.Serve(cmd.Context())
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/anatomy/internal/cli/config"
	"github.com/leapstack-labs/anatomy/internal/cli/output"
	"github.com/leapstack-labs/anatomy/internal/site"
)

// Render output formats.
const (
	FormatAuto     = "auto"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the landing page",
		Long: `Render the landing page to stdout.

Output adapts to environment with --format auto:
  - Terminal: Markdown (readable as-is)
  - Piped/Scripted: the full HTML document`,
		Example: `  # Read the page in the terminal
  anatomy render

  # Save the HTML document
  anatomy render > index.html

  # Force Markdown when piping
  anatomy render --format markdown | less`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatAuto, "Output format (auto|html|markdown)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatAuto, FormatHTML, FormatMarkdown}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolveFormat picks the concrete format for format, given whether stdout is
// a terminal.
func resolveFormat(format string, tty bool) (string, error) {
	switch format {
	case FormatHTML, FormatMarkdown:
		return format, nil
	case FormatAuto, "":
		if tty {
			return FormatMarkdown, nil
		}
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s, %s or %s)", ErrUnknownFormat, format, FormatAuto, FormatHTML, FormatMarkdown)
}

func runRender(cmd *cobra.Command, format string) error {
	cfg := config.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	resolved, err := resolveFormat(format, output.IsTerminal(out))
	if err != nil {
		return err
	}

	var data []byte
	switch resolved {
	case FormatMarkdown:
		data, err = site.RenderMarkdown(cmd.Context())
	default:
		data, err = site.RenderHTML(cmd.Context(), pageMeta(cfg))
	}
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the anatomy version, the commit it was built from and the build toolchain.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "anatomy v%s\n", version)
			_, _ = fmt.Fprintf(out, "commit %s, built %s (%s %s/%s)\n",
				gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the values reported by --version; main injects them via
// ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand assembles the command tree. Matrices are written to out,
// logs to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "spectral",
		Short:         "Build adjacency, Laplacian and incidence matrices of graphs",
		Long:          `spectral reads a graph from a TOML or edge-list file, or generates a standard topology, and prints one of its matrices in dense or sparse form.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(logOut)
	root.SetVersionTemplate(fmt.Sprintf("spectral %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAdjacencyCmd())
	root.AddCommand(newLaplacianCmd())
	root.AddCommand(newIncidenceCmd())

	return root
}

// Execute runs the CLI against os.Stdout/os.Stderr.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the pinboard CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug level with --verbose (-v).
// The logger is attached to the context and reachable from every command
// via loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "pinboard",
		Short:        "Pinboard is a freeform canvas of nestable boxes",
		Long:         `Pinboard lays out boxes from a TOML layout and lets you pick them up, carry them into containers, stamp copies and remove them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	if commit != "" {
		root.SetVersionTemplate(fmt.Sprintf("pinboard {{.Version}} (%s)\n", commit))
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(runCommand())
	root.AddCommand(replayCommand())
	root.AddCommand(treeCommand())

	return root
}

// Package cli implements the stepslider command-line interface.
//
// Commands:
//   - demo: open a window with a configurable StepSlider
//   - geometry: print the computed layout for a slider configuration
//   - snapshot: render a slider configuration to PNG
//
// All commands accept --verbose (-v) for debug logging; the logger travels
// through the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// normally fed from ldflags by the main package.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the stepslider CLI with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "stepslider",
		Short:        "stepslider lays out and renders discrete stepped sliders",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stepslider %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newGeometryCmd())
	root.AddCommand(newSnapshotCmd())
	return root
}

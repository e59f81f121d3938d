// Package cli implements the ezgangsheets command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// log is the process-wide logger, configured by the root command before any
// subcommand runs.
var log zerolog.Logger

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Execute runs the ezgangsheets CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ezgangsheets",
		Short:        "Pack logo designs onto gang sheets for DTF printing",
		Long:         `ezgangsheets lays out repeated copies of design files onto fixed-width print sheets, picks the cheaper orientation, trims each sheet to its minimal billable height, and prices the job against tiered per-length rates.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = newLogger(verbose)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ezgangsheets %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPackCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newMeasureCmd())
	root.AddCommand(newCompareCmd())

	return root.ExecuteContext(context.Background())
}

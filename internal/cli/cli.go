// Package cli implements the vesselcalc command-line interface.
//
// Vessels are described either by a TOML file or by flags; flags given
// alongside a file override its values. A file looks like:
//
//	kind = "horizontal-torispherical-vessel"
//	diameter = 2.4
//	length = 7.2
//	high_liquid_level = 1.9
//	low_liquid_level = 0.5
//	flow_rate = 0.2
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type loggerKey struct{}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// NewRoot builds the command tree. Logs go to errOut.
func NewRoot(errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "vesselcalc",
		Short:         "Volumes, areas and capacity tables of process vessels and tanks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(errOut, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newCalcCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSizeCmd())
	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRoot(os.Stderr).ExecuteContext(ctx)
}

// Command geopar deduces the angles of triangulated figures.
//
//	geopar solve [--pairing ask|always|never] [--jobs N] [--emit] FILE...
//	geopar check FILE...
//
// Figures are read with package figfile: *.yaml and *.yml as YAML, anything
// else in the "N DIM" text format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	verbose bool
	runID   string
	logger  *zap.Logger

	// newLogger builds the logger in PersistentPreRunE.
	newLogger func(verbose bool) (*zap.Logger, error)
	// interactive reports whether prompts may use the terminal UI.
	interactive func(in io.Reader) bool
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newApp() *app {
	return &app{
		logger:      zap.NewNop(),
		newLogger:   productionLogger,
		interactive: isTerminal,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "geopar",
		Short: "Deduce unknown angles of triangulated figures",
		Long: `geopar fills in the unknown angles of a triangulated figure using
three rules: the angles of a triangle add up to 180°, the angles around an
interior vertex add up to 360°, and, on request, angle pairing around an
interior vertex. It then checks that the completed figure is consistent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.runID = uuid.NewString()
			a.logger = logger.With(zap.String("run_id", a.runID))
			a.logger.Debug("starting", zap.String("command", cmd.Name()), zap.Strings("args", args))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every deduction")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a))

	return root
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}

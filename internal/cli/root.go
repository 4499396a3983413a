// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arc-language/fplan"
	"github.com/arc-language/fplan/pkg/core"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
	logger  = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fplan",
	Short: "Build-plan generator for the integrate subpackage",
	Long: `fplan - build-plan generator for the integrate subpackage

Lists the legacy Fortran source trees (quadpack, odepack, linpack_lite, mach),
resolves an ATLAS or BLAS installation (falling back to bundled BLAS sources)
and emits the libraries and extension modules a build orchestrator compiles.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		zapConfig := zap.NewProductionConfig()
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if config.Debug {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fplan/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	return nil
}

func newPlanner() *fplan.Planner {
	return fplan.NewPlanner(config, logger)
}

// reportDiagnostics sends plan warnings to the logger
func reportDiagnostics(diags []fplan.Diagnostic) {
	for _, d := range diags {
		logger.Warn(d.Message, zap.String("dependency", d.Dependency))
	}
}

// internal/cli/plan.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/fplan/pkg/emit"
)

var (
	planParentPackage string
	planFormat        string
	planOutput        string
)

var planCmd = &cobra.Command{
	Use:   "plan [parent-path]",
	Short: "Generate the build plan",
	Long: `Generate the build plan for the integrate sources in parent-path
(default: the current directory) and write it to stdout or --output.

Examples:
  fplan plan ./integrate --parent-package scipy
  fplan plan --format starlark --output BUILD
  BLAS_SRC=/src/blas.tar.xz fplan plan --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planParentPackage, "parent-package", "", "dotted parent package name (e.g. scipy)")
	planCmd.Flags().StringVar(&planFormat, "format", "", fmt.Sprintf("output format: %s (default from config)", formatNames()))
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "write the plan to this file instead of stdout")
}

func runPlan(cmd *cobra.Command, args []string) error {
	parentPath := ""
	if len(args) == 1 {
		parentPath = args[0]
	}

	formatName := planFormat
	if formatName == "" {
		formatName = config.Format
	}
	format, err := emit.ParseFormat(formatName)
	if err != nil {
		return err
	}

	planner := newPlanner()
	build, diags, err := planner.Plan(planParentPackage, parentPath)
	reportDiagnostics(diags)
	if err != nil {
		return err
	}

	logger.Debug("plan generated",
		zap.String("package", build.Package),
		zap.Int("fortran_libraries", len(build.FortranLibraries)),
		zap.Int("extensions", len(build.Extensions)))

	if planOutput == "" {
		return planner.Write(cmd.OutOrStdout(), build, format)
	}

	f, err := os.Create(planOutput)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := planner.Write(f, build, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(emit.Formats()))
	for _, f := range emit.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

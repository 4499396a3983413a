// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/fplan"
)

var infoCmd = &cobra.Command{
	Use:   "info [dependency...]",
	Short: "Show how dependencies resolve",
	Long: `Display the library directories, libraries and sources found for each
dependency (default: atlas, blas, blas_src).`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{fplan.Atlas, fplan.Blas, fplan.BlasSrc}
	}

	planner := newPlanner()
	out := cmd.OutOrStdout()

	for i, name := range names {
		info, err := planner.Info(name)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Dependency: %s\n", name)
		if info.Empty() {
			fmt.Fprintln(out, "  not found")
			continue
		}
		printList(cmd, "Library dirs", info.LibraryDirs)
		printList(cmd, "Libraries", info.Libraries)
		printList(cmd, "Include dirs", info.IncludeDirs)
		if len(info.Sources) > 0 {
			fmt.Fprintf(out, "  Sources: %d files\n", len(info.Sources))
		}
	}

	return nil
}

func printList(cmd *cobra.Command, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", label, strings.Join(values, ", "))
}

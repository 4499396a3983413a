// internal/cli/list.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listParentPackage string

var listCmd = &cobra.Command{
	Use:   "list [parent-path]",
	Short: "List the libraries and extension modules of the plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listParentPackage, "parent-package", "", "dotted parent package name (e.g. scipy)")
}

func runList(cmd *cobra.Command, args []string) error {
	parentPath := ""
	if len(args) == 1 {
		parentPath = args[0]
	}

	build, diags, err := newPlanner().Plan(listParentPackage, parentPath)
	reportDiagnostics(diags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Package: %s\n\n", build.Package)

	fmt.Fprintln(out, "Fortran libraries:")
	for _, lib := range build.FortranLibraries {
		fmt.Fprintf(out, "  %-14s %3d sources%s\n", lib.Name, len(lib.Sources), links(lib.Libraries))
	}

	fmt.Fprintln(out, "\nExtension modules:")
	for _, ext := range build.Extensions {
		fmt.Fprintf(out, "  %s%s\n", ext.Name, links(ext.Libraries))
	}

	return nil
}

func links(libs []string) string {
	if len(libs) == 0 {
		return ""
	}
	return " -> " + strings.Join(libs, ", ")
}

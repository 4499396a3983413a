// internal/cli/sync.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/fplan/pkg/index"
)

var (
	syncURL    string
	syncBranch string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update the dependency registry",
	Long: `Clone the dependency registry repository and replace the local registry
(registry_path in the config) with its <name>/index.toml entries.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncURL, "url", "", "registry repository (default from config)")
	syncCmd.Flags().StringVar(&syncBranch, "branch", "", "registry branch (default from config)")
}

func runSync(cmd *cobra.Command, args []string) error {
	url := syncURL
	if url == "" {
		url = config.RegistryURL
	}
	branch := syncBranch
	if branch == "" && syncURL == "" {
		branch = config.RegistryBranch
	}

	return index.Sync(index.Options{
		URL:    url,
		Branch: branch,
		Dest:   config.RegistryPath,
		Logger: logger,
	})
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// syncVersionsCmd represents the sync-versions command
var syncVersionsCmd = &cobra.Command{
	Use:   "sync-versions",
	Short: "Re-expand game version lists of published versions",
	Long: `Bring the game version list of already published versions up to date
with the current Minecraft releases. For each project the version matching
the local pack version is updated; when none matches, the newest published
version is.`,
	RunE: runSyncVersions,
}

func init() {
	rootCmd.AddCommand(syncVersionsCmd)
}

func runSyncVersions(cmd *cobra.Command, args []string) error {
	return runner.SyncGameVersions(context.Background())
}

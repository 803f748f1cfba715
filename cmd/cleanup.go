package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup <non-draft|published>",
	Short: "Delete local folders whose content is live",
	Long: `Delete local project folders that are no longer needed:

  non-draft  folders whose remote project has left the draft status
  published  folders whose current pack version is already published

Combine with --dry-run to preview what would be deleted.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"non-draft", "published"},
	RunE:      runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	switch args[0] {
	case "non-draft":
		return runner.CleanupNonDraft(ctx)
	case "published":
		return runner.CleanupPublished(ctx)
	default:
		return fmt.Errorf("unknown cleanup target %q (must be non-draft or published)", args[0])
	}
}

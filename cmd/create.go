package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create draft projects for new packs",
	Long: `Create a draft project on Modrinth for every local project that does
not exist there yet, uploading the project icon alongside. Existing
projects are skipped; run the update commands to fill in their content.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	return runner.Create(context.Background())
}

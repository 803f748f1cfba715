package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload pack files as new versions",
	Long: `Upload every local project's pack file to its Modrinth project as a
new release version. The version's game version list is expanded from the
current Minecraft releases down to the project's configured cutoff.`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	return runner.Publish(context.Background())
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check local projects against Modrinth",
	Long: `Check every project in the build directory for missing files and
report whether it already exists on Modrinth. This command performs no
changes.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runner.Check(context.Background())
}

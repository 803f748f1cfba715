package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit draft projects for review",
	Long: `Submit every draft project of the configured organizations for
moderation review by moving it to the processing status. Projects that are
already processing are skipped. The filter flag does not apply here; this
command works from the remote organization listing.`,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	return runner.Submit(context.Background())
}

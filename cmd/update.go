package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [all|icon|gallery|data|body]",
	Short: "Update existing projects on Modrinth",
	Long: `Update the remote side of every existing project from the local build
tree. The optional argument selects what to push:

  all      icon, gallery, metadata and body (default)
  icon     the project icon
  gallery  the featured gallery image
  data     title, summary, categories, links, license and body
  body     only the rendered project body`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"all", "icon", "gallery", "data", "body"},
	RunE:      runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	subtask := "all"
	if len(args) > 0 {
		subtask = args[0]
	}

	ctx := context.Background()
	switch subtask {
	case "all":
		return runner.UpdateAll(ctx)
	case "icon":
		return runner.UpdateIcon(ctx)
	case "gallery":
		return runner.UpdateGallery(ctx)
	case "data":
		return runner.UpdateData(ctx)
	case "body":
		return runner.UpdateBody(ctx)
	default:
		return fmt.Errorf("unknown update target %q (must be all, icon, gallery, data or body)", subtask)
	}
}

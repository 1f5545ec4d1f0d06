package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kitbash/renamer/internal/controller"
	"github.com/kitbash/renamer/internal/domain"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the scene hierarchy",
		Long:  treeLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scene, err := loadScene()
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd)
			workflow := domain.NewWorkflow(scene, domain.NewLedger(), ui)

			return ui.DisplayTree(workflow.Tree())
		},
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// quickCmd represents the quick command.
var quickCmd = newQuickCmd()

func newQuickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick TOKEN",
		Short: "Apply a one-click affix token",
		Long:  quickLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			affix, err := catalog.QuickAffix(args[0])
			if err != nil {
				choices := append(catalog.QuickPrefixes(), catalog.QuickSuffixes()...)
				return cmdErrorWithChoices(err, choices)
			}

			return runRename(cmd, affix)
		},
	}
}

func init() {
	rootCmd.AddCommand(quickCmd)
}

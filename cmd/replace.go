package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	m "github.com/kitbash/renamer/internal/model"
)

// replaceCmd represents the replace command.
var replaceCmd = newReplaceCmd()

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace SEARCH [REPLACE]",
		Short: "Replace a literal substring in each target's name",
		Long:  replaceLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("search term must not be empty")
			}

			replace := ""
			if len(args) == 2 {
				replace = args[1]
			}

			return runRename(cmd, m.SearchReplace{Search: args[0], Replace: replace})
		},
	}
}

func init() {
	rootCmd.AddCommand(replaceCmd)
}

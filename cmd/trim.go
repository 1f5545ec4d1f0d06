package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/kitbash/renamer/internal/model"
)

// trimCmd represents the trim command.
var trimCmd = newTrimCmd()

func newTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim SIDE",
		Short: "Remove the first or last character of each target's name",
		Long:  trimLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := m.ParseSide(args[0])
			if err != nil {
				return err
			}

			return runRename(cmd, m.Trim{Side: side})
		},
	}
}

func init() {
	rootCmd.AddCommand(trimCmd)
}

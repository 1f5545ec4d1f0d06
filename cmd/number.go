package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/kitbash/renamer/internal/model"
)

var numberStartFlag int
var numberPaddingFlag int

// numberCmd represents the number command.
var numberCmd = newNumberCmd()

func newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number BASE",
		Short: "Rename targets to a base name plus a sequence number",
		Long:  numberLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, m.Numbering{
				Base:    args[0],
				Start:   numberStartFlag,
				Padding: numberPaddingFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&numberStartFlag, "start", "n", 1, "first sequence number")
	cmd.Flags().IntVarP(&numberPaddingFlag, "padding", "p", 2, "zero-padding width")

	return cmd
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

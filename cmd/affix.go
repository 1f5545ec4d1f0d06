package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/kitbash/renamer/internal/model"
)

var prefixSeparatorFlag string
var suffixSeparatorFlag string

// prefixCmd represents the prefix command.
var prefixCmd = newPrefixCmd()

// suffixCmd represents the suffix command.
var suffixCmd = newSuffixCmd()

func newPrefixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix TEXT",
		Short: "Prepend text to each target's name",
		Long:  prefixLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAffix(cmd, args[0], m.PositionPrefix, prefixSeparatorFlag)
		},
	}
	cmd.Flags().StringVar(&prefixSeparatorFlag, "separator", string(m.SeparatorNone), "separator between text and name: none or underscore")

	return cmd
}

func newSuffixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffix TEXT",
		Short: "Append text to each target's name",
		Long:  suffixLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAffix(cmd, args[0], m.PositionSuffix, suffixSeparatorFlag)
		},
	}
	cmd.Flags().StringVar(&suffixSeparatorFlag, "separator", string(m.SeparatorNone), "separator between name and text: none or underscore")

	return cmd
}

func runAffix(cmd *cobra.Command, text string, position m.Position, separator string) error {
	sep, err := m.ParseSeparator(separator)
	if err != nil {
		return err
	}

	return runRename(cmd, m.Affix{Text: text, Position: position, Separator: sep})
}

func init() {
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(suffixCmd)
}

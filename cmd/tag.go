package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	m "github.com/kitbash/renamer/internal/model"
)

// tagCmd represents the tag command.
var tagCmd = newTagCmd()

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag CONVENTION",
		Short: "Prefix targets with a naming-convention token",
		Long:  tagLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			token, err := catalog.Token(args[0])
			if err != nil {
				return cmdErrorWithChoices(err, catalog.Labels())
			}

			return runRename(cmd, m.ConventionTag{Token: token})
		},
	}
}

// cmdErrorWithChoices appends the valid choices to a lookup error.
func cmdErrorWithChoices(err error, choices []string) error {
	return &choicesError{err: err, choices: choices}
}

type choicesError struct {
	err     error
	choices []string
}

func (e *choicesError) Error() string {
	return e.err.Error() + " (choices: " + strings.Join(e.choices, ", ") + ")"
}

func (e *choicesError) Unwrap() error {
	return e.err
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

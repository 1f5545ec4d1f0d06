package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitbash/renamer/internal/controller"
	"github.com/kitbash/renamer/internal/domain"
)

// sessionCmd represents the session command.
var sessionCmd = newSessionCmd()

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive renaming session",
		Long:  sessionLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !controller.IsTTY(os.Stdout) {
				return errors.New("session needs an interactive terminal")
			}

			scene, err := loadScene()
			if err != nil {
				return err
			}

			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			warnings := &controller.WarningBuffer{}
			ledger := domain.NewLedger()
			workflow := domain.NewWorkflow(scene, ledger, warnings)

			session := controller.NewSession(workflow, catalog, warnings, cmd.OutOrStdout())
			if err := session.Run(); err != nil {
				return err
			}

			// The session is over: show what it did and write the scene
			// back once, so a crashed session never half-saves.
			ui := controller.NewUI(cmd)
			entries := ledger.Entries()

			if err := ui.DisplayHistory(entries); err != nil {
				return err
			}

			return finishBatch(ui, scene, entries)
		},
	}
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// Package cmd provides the root command and CLI setup for renamer.
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kitbash/renamer/internal/adapter"
	"github.com/kitbash/renamer/internal/config"
	"github.com/kitbash/renamer/internal/controller"
	"github.com/kitbash/renamer/internal/domain"
	m "github.com/kitbash/renamer/internal/model"
)

var clip adapter.Clipboard

func init() {
	clip = adapter.NewSystemClipboard()
}

var sceneFlag string
var selectFlags []string
var scopeFlag string
var dryRunFlag bool
var copyFlag bool
var tokensFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "renamer",
		Short:         "Batch renaming for scene hierarchies",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVarP(&sceneFlag, "scene", "f", "", "scene document to operate on (YAML)")
	cmd.PersistentFlags().StringArrayVarP(&selectFlags, "select", "S", nil, "select objects by name or full path (overrides the document selection, can be repeated)")
	cmd.PersistentFlags().StringVar(&scopeFlag, "scope", string(m.ScopeSelected), "targets: selected, hierarchy or all")
	cmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "compute and show renames without writing the scene back")
	cmd.PersistentFlags().BoolVar(&copyFlag, "copy", false, "copy the applied renames to the clipboard")
	cmd.PersistentFlags().StringVar(&tokensFlag, "tokens", "", "TOML token tables merged over the built-ins (default $"+config.TokensEnvVar+")")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadScene opens the scene document and applies any --select overrides.
func loadScene() (*adapter.DocumentScene, error) {
	if sceneFlag == "" {
		return nil, errors.New("--scene is required")
	}

	scene, err := adapter.LoadScene(sceneFlag)
	if err != nil {
		return nil, err
	}

	if len(selectFlags) > 0 {
		if err := scene.Select(selectFlags); err != nil {
			return nil, err
		}
	}

	return scene, nil
}

// loadCatalog builds the token catalog, honoring --tokens then the
// environment.
func loadCatalog() (*domain.Catalog, error) {
	path := tokensFlag
	if path == "" {
		path = config.TokensPath()
	}

	tokens, err := config.LoadTokens(path)
	if err != nil {
		return nil, err
	}

	return domain.NewCatalog(tokens), nil
}

// runRename is the shared one-shot command path: load the scene, apply one
// operation over the requested scope, show the result, write the scene back.
func runRename(cmd *cobra.Command, op m.Operation) error {
	scope, err := m.ParseScope(scopeFlag)
	if err != nil {
		return err
	}

	scene, err := loadScene()
	if err != nil {
		return err
	}

	ui := controller.NewUI(cmd)
	workflow := domain.NewWorkflow(scene, domain.NewLedger(), ui)

	entries, err := workflow.Rename(domain.RenameArgs{Op: op, Scope: scope})
	if err != nil {
		return err
	}

	if err := ui.DisplayRenames(entries); err != nil {
		return err
	}

	return finishBatch(ui, scene, entries)
}

// finishBatch persists the scene and honors --copy. Nothing is written when
// no rename was applied or --dry-run is set. The scene's own dirty state
// decides the save: a session may clear its log after applying renames, and
// those renames still have to reach the file.
func finishBatch(ui controller.UI, scene *adapter.DocumentScene, entries []m.HistoryEntry) error {
	if !scene.Dirty() {
		return nil
	}

	if dryRunFlag {
		ui.Infof("dry run: scene not written")
	} else if err := scene.Save(); err != nil {
		return err
	}

	if copyFlag && len(entries) > 0 {
		if err := clip.Write(historyText(entries)); err != nil {
			return err
		}

		ui.Infof("copied %d rename(s) to clipboard", len(entries))
	}

	return nil
}

// historyText renders entries as the clipboard payload, one per line.
func historyText(entries []m.HistoryEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.String())
		b.WriteString("\n")
	}

	return b.String()
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitbash/renamer/internal/adapter"
	"github.com/kitbash/renamer/internal/controller"
	"github.com/kitbash/renamer/internal/domain"
	m "github.com/kitbash/renamer/internal/model"
)

func newBufferedUI() controller.UI {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return controller.NewUI(cmd)
}

// Clearing the history only empties the log. Renames applied before the
// clear still have to reach the scene file when the session ends.
func TestFinishBatch_SavesAppliedRenamesAfterHistoryClear(t *testing.T) {
	resetFlags()

	path := writeScene(t, limbsDoc)

	scene, err := adapter.LoadScene(path)
	require.NoError(t, err)

	ledger := domain.NewLedger()
	workflow := domain.NewWorkflow(scene, ledger, &controller.WarningBuffer{})

	_, err = workflow.Rename(domain.RenameArgs{
		Op:    m.Numbering{Base: "jnt", Start: 1, Padding: 2},
		Scope: m.ScopeSelected,
	})
	require.NoError(t, err)

	workflow.ClearHistory()
	require.Empty(t, ledger.Entries())

	require.NoError(t, finishBatch(newBufferedUI(), scene, ledger.Entries()))

	assert.Equal(t, []string{"jnt01", "jnt02"}, loadNames(t, path, "jnt01", "jnt02"))
}

func TestFinishBatch_CleanSceneWritesNothing(t *testing.T) {
	resetFlags()

	path := writeScene(t, limbsDoc)

	scene, err := adapter.LoadScene(path)
	require.NoError(t, err)

	require.NoError(t, finishBatch(newBufferedUI(), scene, nil))

	assert.Equal(t, []string{"leg", "arm"}, loadNames(t, path, "leg", "arm"))
}

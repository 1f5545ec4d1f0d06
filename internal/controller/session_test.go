package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitbash/renamer/internal/adapter"
	"github.com/kitbash/renamer/internal/config"
	"github.com/kitbash/renamer/internal/domain"
	m "github.com/kitbash/renamer/internal/model"
)

func newTestSessionModel(t *testing.T) (sessionModel, *WarningBuffer) {
	t.Helper()

	scene, err := adapter.ParseScene([]byte(`
selection:
  - pCube1
objects:
  - name: pCube1
  - name: x
`))
	require.NoError(t, err)

	warnings := &WarningBuffer{}
	workflow := domain.NewWorkflow(scene, domain.NewLedger(), warnings)
	catalog := domain.NewCatalog(config.DefaultTokens())

	return newSessionModel(workflow, catalog, warnings), warnings
}

func TestWarningBuffer_DrainEmptiesBuffer(t *testing.T) {
	buf := &WarningBuffer{}
	buf.Warnf("skipping %q", "x")
	buf.Warnf("second")

	lines := buf.Drain()
	require.Len(t, lines, 2)
	assert.Equal(t, `skipping "x"`, lines[0])

	assert.Empty(t, buf.Drain())
}

func TestSessionModel_MenuEnterOpensForm(t *testing.T) {
	sm, _ := newTestSessionModel(t)

	updated, _ := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	assert.Equal(t, stateForm, got.state)
	assert.Equal(t, opKeyNumber, got.opKey)

	// base, start, padding, scope
	require.Len(t, got.fields, 4)
	assert.Equal(t, string(m.ScopeSelected), got.fields[3].input.Value())
}

func TestSessionModel_FormValidationKeepsForm(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyNumber)

	// base name left empty
	sm.fields[1].input.SetValue("1")
	sm.fields[2].input.SetValue("2")

	updated, _ := sm.applyForm()

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	assert.Equal(t, stateForm, got.state)
	assert.NotEmpty(t, got.formErr)
}

func TestSessionModel_ApplyNumberingShowsResult(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyNumber)

	sm.fields[0].input.SetValue("jnt")
	sm.fields[1].input.SetValue("5")
	sm.fields[2].input.SetValue("3")

	updated, _ := sm.applyForm()

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	require.Equal(t, stateResult, got.state)

	require.Len(t, got.applied, 1)
	assert.Equal(t, "jnt005", got.applied[0].New)
	assert.Empty(t, got.lastWarnings)
}

func TestSessionModel_WarningsSurfaceInResult(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyTrimFirst)

	// select both objects; "x" is too short to trim
	sm.fields[0].input.SetValue(string(m.ScopeAll))

	updated, _ := sm.applyForm()

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	require.Equal(t, stateResult, got.state)

	require.Len(t, got.applied, 1)
	assert.Equal(t, "Cube1", got.applied[0].New)
	assert.Len(t, got.lastWarnings, 1)
}

func TestSessionModel_QuickTokenForm(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyQuick)

	sm.fields[0].input.SetValue("geo")

	updated, _ := sm.applyForm()

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	require.Equal(t, stateResult, got.state)

	require.Len(t, got.applied, 1)
	assert.Equal(t, "pCube1_geo", got.applied[0].New)
}

func TestSessionModel_ConventionFormRejectsUnknownLabel(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyConvention)

	sm.fields[0].input.SetValue("Lighting")

	updated, _ := sm.applyForm()

	got, ok := updated.(sessionModel)
	require.True(t, ok)
	assert.Equal(t, stateForm, got.state)
	assert.NotEmpty(t, got.formErr)
}

func TestSessionModel_HistoryClearFromHistoryView(t *testing.T) {
	sm, _ := newTestSessionModel(t)
	sm = sm.openForm(opKeyTrimLast)

	updated, _ := sm.applyForm()
	sm = updated.(sessionModel)
	require.Len(t, sm.workflow.History(), 1)

	sm.state = stateHistory

	updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	sm = updated.(sessionModel)

	assert.Empty(t, sm.workflow.History())
}

func TestSessionModel_ViewRendersEachState(t *testing.T) {
	sm, _ := newTestSessionModel(t)

	updated, _ := sm.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	sm = updated.(sessionModel)

	assert.NotEmpty(t, sm.View())

	sm = sm.openForm(opKeyReplace)
	assert.Contains(t, sm.View(), "Search")

	sm.state = stateHistory
	assert.Contains(t, sm.View(), "Renaming history")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kitbash/renamer/internal/model"
)

const treeDoc = `
objects:
  - name: A
    children:
      - name: B
        children:
          - name: D
      - name: C
  - name: E
`

func TestResolver_SelectedKeepsSelectionOrder(t *testing.T) {
	scene := loadTestScene(t, treeDoc)
	require.NoError(t, scene.Select([]string{"C", "B"}))

	resolver := NewResolver(scene)

	targets, err := resolver.Resolve(scene.Selection(), m.ScopeSelected)
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "B"}, resolvedNames(t, scene, targets))
}

func TestResolver_SelectedEmptySelectionIsValid(t *testing.T) {
	scene := loadTestScene(t, treeDoc)

	resolver := NewResolver(scene)

	targets, err := resolver.Resolve(nil, m.ScopeSelected)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestResolver_HierarchyIsPreOrderLeftToRight(t *testing.T) {
	scene := loadTestScene(t, treeDoc)
	require.NoError(t, scene.Select([]string{"A"}))

	resolver := NewResolver(scene)

	targets, err := resolver.Resolve(scene.Selection(), m.ScopeHierarchy)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, resolvedNames(t, scene, targets))
}

func TestResolver_HierarchyOverlappingSelectionsYieldEachObjectOnce(t *testing.T) {
	scene := loadTestScene(t, treeDoc)

	// B is a descendant of A; selecting both must not double-count B or D
	require.NoError(t, scene.Select([]string{"A", "B"}))

	resolver := NewResolver(scene)

	targets, err := resolver.Resolve(scene.Selection(), m.ScopeHierarchy)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, resolvedNames(t, scene, targets))
}

func TestResolver_AllIgnoresSelection(t *testing.T) {
	scene := loadTestScene(t, treeDoc)
	require.NoError(t, scene.Select([]string{"D"}))

	resolver := NewResolver(scene)

	targets, err := resolver.Resolve(scene.Selection(), m.ScopeAll)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, resolvedNames(t, scene, targets))
}

func TestResolver_UnknownScopeFails(t *testing.T) {
	scene := loadTestScene(t, treeDoc)

	resolver := NewResolver(scene)

	_, err := resolver.Resolve(nil, m.Scope("everything"))
	assert.Error(t, err)
}

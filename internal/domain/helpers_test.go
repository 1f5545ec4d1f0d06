package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kitbash/renamer/internal/adapter"
	m "github.com/kitbash/renamer/internal/model"
)

// testWarner collects warnings so tests can assert on per-object failures.
type testWarner struct {
	warnings []string
}

func (w *testWarner) Warnf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

func loadTestScene(t *testing.T, doc string) *adapter.DocumentScene {
	t.Helper()

	scene, err := adapter.ParseScene([]byte(doc))
	require.NoError(t, err)

	return scene
}

// resolvedNames reads the current display names behind refs.
func resolvedNames(t *testing.T, scene adapter.Scene, refs []m.Ref) []string {
	t.Helper()

	out := make([]string, 0, len(refs))

	for _, ref := range refs {
		name, err := scene.Name(ref)
		require.NoError(t, err)

		out = append(out, name)
	}

	return out
}

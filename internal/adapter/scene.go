// Package adapter provides the host-facing ports and their local
// implementations: the scene graph the engine renames through, and the
// system clipboard the history view copies to.
package adapter

import (
	m "github.com/kitbash/renamer/internal/model"
)

// Scene is the host scene-graph surface the engine consumes. The scene owns
// every object; the engine only reads and writes display names through it.
type Scene interface {
	// Selection returns the current selection in host selection order.
	Selection() []m.Ref
	// Roots returns the top-level objects in host-reported order.
	Roots() []m.Ref
	// Children returns ref's direct children, left-to-right.
	Children(ref m.Ref) []m.Ref
	// Name returns ref's current display name.
	Name(ref m.Ref) (string, error)
	// SetName renames ref. The host may reject a name (empty, separator
	// characters, duplicate among siblings); such failures are per-object
	// and must not abort a batch.
	SetName(ref m.Ref, name string) error
	// Path returns ref's full path, derived from the live names of ref and
	// its ancestors (e.g. "|group1|pSphere1"). Never cached by callers.
	Path(ref m.Ref) (string, error)
}

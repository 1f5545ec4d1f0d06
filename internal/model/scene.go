// Package model defines the data structures for batch renaming.
package model

// Ref is a stable handle to a scene object, assigned by the host adapter.
// It stays valid across renames; only the display name behind it changes.
type Ref int

// RefNone marks the absence of a scene object (e.g. the parent of a root).
const RefNone Ref = -1

// Scope selects which scene objects a rename operation targets.
type Scope string

const (
	// ScopeSelected targets exactly the host selection, in selection order.
	ScopeSelected Scope = "selected"

	// ScopeHierarchy targets each selected object and all of its
	// descendants, parents before children.
	ScopeHierarchy Scope = "hierarchy"

	// ScopeAll targets every object in the scene, top-down from the roots.
	ScopeAll Scope = "all"
)

// TreeNode is one row of a scene hierarchy listing.
type TreeNode struct {
	Name  string
	Path  string
	Depth int
}

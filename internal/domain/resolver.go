package domain

import (
	"fmt"

	"github.com/kitbash/renamer/internal/adapter"
	m "github.com/kitbash/renamer/internal/model"
)

// Resolver expands a raw selection into the ordered target list for an
// operation, given a scope mode. The order it produces is load-bearing:
// numbering follows it, and hierarchy scopes must list parents before
// children so that path-derived state is never stale mid-batch.
type Resolver interface {
	Resolve(selection []m.Ref, scope m.Scope) ([]m.Ref, error)
}

type resolver struct {
	scene adapter.Scene
}

// NewResolver constructs a Resolver over the given scene.
func NewResolver(scene adapter.Scene) Resolver {
	return &resolver{scene: scene}
}

// Resolve returns the ordered, duplicate-free target list. An empty result
// is valid; callers treat it as a no-op.
func (r *resolver) Resolve(selection []m.Ref, scope m.Scope) ([]m.Ref, error) {
	switch scope {
	case m.ScopeSelected:
		out := make([]m.Ref, len(selection))
		copy(out, selection)

		return out, nil

	case m.ScopeHierarchy:
		return r.expand(selection), nil

	case m.ScopeAll:
		return r.expand(r.scene.Roots()), nil
	}

	return nil, fmt.Errorf("unknown scope %q", scope)
}

// expand pre-order traverses each starting object in turn (self first, then
// children left-to-right), skipping refs already collected so overlapping
// selections yield each object exactly once.
func (r *resolver) expand(starts []m.Ref) []m.Ref {
	seen := make(map[m.Ref]bool)

	var targets []m.Ref

	var descend func(m.Ref)

	descend = func(ref m.Ref) {
		if seen[ref] {
			return
		}

		seen[ref] = true
		targets = append(targets, ref)

		for _, child := range r.scene.Children(ref) {
			descend(child)
		}
	}

	for _, start := range starts {
		descend(start)
	}

	return targets
}

// Package domain implements the renaming engine: scope resolution, rename
// sequencing, the session history ledger, and the convention catalog.
package domain

import (
	"github.com/kitbash/renamer/internal/adapter"
	m "github.com/kitbash/renamer/internal/model"
)

// RenameArgs describes one batch: the operation to apply and the scope that
// selects its targets.
type RenameArgs struct {
	Op    m.Operation
	Scope m.Scope
}

// Workflow is the engine surface the commands and the interactive session
// drive. One Rename call is one UI event: it runs to completion with no
// suspension points and no cancellation.
type Workflow interface {
	// Rename resolves the scope against the current host selection and
	// applies the operation, returning the entries appended this batch.
	Rename(args RenameArgs) ([]m.HistoryEntry, error)
	// History returns the full session ledger, oldest first.
	History() []m.HistoryEntry
	// ClearHistory empties the session ledger.
	ClearHistory()
	// Tree lists the whole scene pre-order for display.
	Tree() []m.TreeNode
}

type workflow struct {
	scene     adapter.Scene
	resolver  Resolver
	sequencer Sequencer
	ledger    Ledger
}

// NewWorkflow wires the engine over the given scene. Warnings from the
// sequencer flow to warner; successful renames land in ledger.
func NewWorkflow(scene adapter.Scene, ledger Ledger, warner Warner) Workflow {
	return &workflow{
		scene:     scene,
		resolver:  NewResolver(scene),
		sequencer: NewSequencer(scene, ledger, warner),
		ledger:    ledger,
	}
}

func (w *workflow) Rename(args RenameArgs) ([]m.HistoryEntry, error) {
	targets, err := w.resolver.Resolve(w.scene.Selection(), args.Scope)
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		return nil, nil
	}

	return w.sequencer.Apply(targets, args.Op)
}

func (w *workflow) History() []m.HistoryEntry {
	return w.ledger.Entries()
}

func (w *workflow) ClearHistory() {
	w.ledger.Clear()
}

func (w *workflow) Tree() []m.TreeNode {
	var rows []m.TreeNode

	var descend func(ref m.Ref, depth int)

	descend = func(ref m.Ref, depth int) {
		name, err := w.scene.Name(ref)
		if err != nil {
			return
		}

		path, err := w.scene.Path(ref)
		if err != nil {
			return
		}

		rows = append(rows, m.TreeNode{Name: name, Path: path, Depth: depth})

		for _, child := range w.scene.Children(ref) {
			descend(child, depth+1)
		}
	}

	for _, root := range w.scene.Roots() {
		descend(root, 0)
	}

	return rows
}

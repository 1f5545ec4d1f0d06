package domain

import (
	"github.com/kitbash/renamer/internal/adapter"
	"github.com/kitbash/renamer/internal/domain/transforms"
	m "github.com/kitbash/renamer/internal/model"
)

// Warner receives non-fatal per-object diagnostics during a batch.
type Warner interface {
	Warnf(format string, args ...any)
}

// Sequencer applies one operation across an ordered target list. The batch
// is not transactional: per-object failures are reported as warnings and the
// remaining targets still get processed, so partial application is the
// accepted failure mode. Successful renames are never rolled back.
type Sequencer interface {
	Apply(targets []m.Ref, op m.Operation) ([]m.HistoryEntry, error)
}

type sequencer struct {
	scene  adapter.Scene
	ledger Ledger
	warner Warner
}

// NewSequencer constructs a Sequencer over the given scene, recording
// successful renames in ledger and per-object failures through warner.
func NewSequencer(scene adapter.Scene, ledger Ledger, warner Warner) Sequencer {
	return &sequencer{scene: scene, ledger: ledger, warner: warner}
}

// Apply walks targets in their given order. For each target it computes the
// new name, asks the host to rename, and appends a history entry on success.
// A transform skip or a host rejection warns and moves on without mutating
// that object or touching the ledger. Only an unknown operation kind aborts.
func (s *sequencer) Apply(targets []m.Ref, op m.Operation) ([]m.HistoryEntry, error) {
	applied := make([]m.HistoryEntry, 0, len(targets))

	for index, ref := range targets {
		oldName, err := s.scene.Name(ref)
		if err != nil {
			s.warner.Warnf("skipping target %d: %v", index, err)
			continue
		}

		newName, err := transforms.Apply(op, oldName, index)
		if err != nil {
			if transforms.IsSkip(err) {
				s.warner.Warnf("skipping %q: %v", oldName, err)
				continue
			}

			return applied, err
		}

		if newName == oldName {
			continue
		}

		if err := s.scene.SetName(ref, newName); err != nil {
			s.warner.Warnf("could not rename %q to %q: %v", oldName, newName, err)
			continue
		}

		applied = append(applied, s.ledger.Append(oldName, newName))
	}

	return applied, nil
}

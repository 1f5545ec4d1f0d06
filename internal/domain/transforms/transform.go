// Package transforms computes new name strings from old names and an
// operation's parameters. Every transform is a pure function of its inputs;
// none of them touches the scene.
package transforms

import (
	"errors"
	"fmt"

	m "github.com/kitbash/renamer/internal/model"
)

// ErrNameTooShort reports a trim on a name of one character or less. It is a
// per-object skip: the sequencer warns, leaves the object unmodified, and
// continues with the remaining targets.
var ErrNameTooShort = errors.New("name too short to remove a character")

// ErrUnknownOperation reports an operation kind the engine does not
// implement. Unlike a skip, this aborts the call that passed it.
var ErrUnknownOperation = errors.New("unknown operation kind")

// Apply computes the new name for oldName under op. index is the zero-based
// position of the object within the resolved target list; only Numbering
// uses it.
func Apply(op m.Operation, oldName string, index int) (string, error) {
	switch op := op.(type) {
	case m.Numbering:
		return ApplyNumbering(op, oldName, index), nil

	case m.Affix:
		return ApplyAffix(op, oldName), nil

	case m.Trim:
		return ApplyTrim(op, oldName)

	case m.SearchReplace:
		return ApplySearchReplace(op, oldName), nil

	case m.ConventionTag:
		return ApplyConventionTag(op, oldName), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op.Kind())
}

// IsSkip reports whether err is a per-object skip rather than a failure of
// the whole call.
func IsSkip(err error) bool {
	return errors.Is(err, ErrNameTooShort)
}

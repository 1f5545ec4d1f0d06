package transforms

import (
	m "github.com/kitbash/renamer/internal/model"
)

// ApplyAffix attaches op.Text to one end of oldName. An empty Text is a
// no-op regardless of position or separator.
func ApplyAffix(op m.Affix, oldName string) string {
	if op.Text == "" {
		return oldName
	}

	sep := ""
	if op.Separator == m.SeparatorUnderscore {
		sep = "_"
	}

	if op.Position == m.PositionSuffix {
		return oldName + sep + op.Text
	}

	return op.Text + sep + oldName
}

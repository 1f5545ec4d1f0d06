// Package controller renders engine output for the user: plain text tables
// for one-shot commands and a Bubble Tea session for interactive renaming.
package controller

import (
	m "github.com/kitbash/renamer/internal/model"
)

// UI is the output surface the commands drive. Implementations can use
// different output methods (simple text, TUI).
type UI interface {
	// Warnf reports a non-fatal per-object diagnostic.
	Warnf(format string, args ...any)
	// Infof reports a status line.
	Infof(format string, args ...any)
	// DisplayRenames shows the renames one batch applied.
	DisplayRenames(entries []m.HistoryEntry) error
	// DisplayHistory shows the full session ledger.
	DisplayHistory(entries []m.HistoryEntry) error
	// DisplayTree shows the scene hierarchy.
	DisplayTree(rows []m.TreeNode) error
}

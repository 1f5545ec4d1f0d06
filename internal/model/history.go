package model

import "fmt"

// HistoryEntry records one successful rename. Entries are immutable once
// appended; Ordinal is the ledger-assigned insertion position, oldest first.
type HistoryEntry struct {
	Old     string
	New     string
	Ordinal int
}

// String renders the entry the way the history view displays it.
func (e HistoryEntry) String() string {
	return fmt.Sprintf("%s → %s", e.Old, e.New)
}

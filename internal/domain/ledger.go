package domain

import (
	m "github.com/kitbash/renamer/internal/model"
)

// Ledger is the append-only session log of successful renames. It lives in
// memory for the duration of one tool session and is never persisted. The
// sequencer is its only writer and the history view its only reader, both on
// the same synchronous call path.
type Ledger interface {
	// Append records one successful rename and returns the stored entry.
	Append(old, new string) m.HistoryEntry
	// Entries returns all entries in insertion order, oldest first.
	Entries() []m.HistoryEntry
	// Clear empties the log.
	Clear()
}

type ledger struct {
	entries []m.HistoryEntry
}

// NewLedger creates an empty Ledger.
func NewLedger() Ledger {
	return &ledger{}
}

func (l *ledger) Append(old, new string) m.HistoryEntry {
	entry := m.HistoryEntry{Old: old, New: new, Ordinal: len(l.entries)}
	l.entries = append(l.entries, entry)

	return entry
}

func (l *ledger) Entries() []m.HistoryEntry {
	out := make([]m.HistoryEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *ledger) Clear() {
	l.entries = nil
}

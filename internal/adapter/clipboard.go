package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard surface the history view copies to.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard implements Clipboard using the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard creates a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Write copies text to the system clipboard.
func (SystemClipboard) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	return nil
}

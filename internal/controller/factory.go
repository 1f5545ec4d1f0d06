package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates the UI for one-shot commands.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

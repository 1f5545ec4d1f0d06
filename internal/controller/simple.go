package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/kitbash/renamer/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Warnf prints a warning to stderr. Warnings never abort a batch.
func (s *SimpleUI) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
}

// Infof prints a status line to stdout.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf(format+"\n", args...)
}

// DisplayRenames prints the batch result as an old/new table.
func (s *SimpleUI) DisplayRenames(entries []m.HistoryEntry) error {
	if len(entries) == 0 {
		s.printf("No objects renamed\n")
		return nil
	}

	s.printf("\n%s", renderEntryTable(entries, "Renamed"))

	return nil
}

// DisplayHistory prints the session ledger as an old/new table.
func (s *SimpleUI) DisplayHistory(entries []m.HistoryEntry) error {
	if len(entries) == 0 {
		s.printf("History is empty\n")
		return nil
	}

	s.printf("\n%s", renderEntryTable(entries, "Entries"))

	return nil
}

// DisplayTree prints the scene hierarchy with two-space indentation.
func (s *SimpleUI) DisplayTree(rows []m.TreeNode) error {
	if len(rows) == 0 {
		s.printf("Scene is empty\n")
		return nil
	}

	for _, row := range rows {
		s.printf("%s%s\n", strings.Repeat("  ", row.Depth), row.Name)
	}

	s.printf("\n%d objects\n", len(rows))

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderEntryTable renders history entries the way the history view shows
// them, with a count footer.
func renderEntryTable(entries []m.HistoryEntry, footerLabel string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Old Name", "New Name"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		table.Append([]string{entry.Old, entry.New})
	}

	table.SetFooter([]string{footerLabel, fmt.Sprintf("%d", len(entries))})
	table.Render()

	return tableBuffer.String()
}

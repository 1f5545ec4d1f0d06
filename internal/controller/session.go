package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kitbash/renamer/internal/domain"
	m "github.com/kitbash/renamer/internal/model"
)

// WarningBuffer collects sequencer warnings for deferred display. The
// session drains it after each batch instead of interleaving warnings with
// the alt-screen UI.
type WarningBuffer struct {
	lines []string
}

// Warnf implements domain.Warner.
func (b *WarningBuffer) Warnf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// Drain returns the collected warnings and empties the buffer.
func (b *WarningBuffer) Drain() []string {
	lines := b.lines
	b.lines = nil

	return lines
}

// Session runs the interactive rename loop: pick an operation, fill in its
// parameters, apply, inspect or clear the history, repeat. The ledger lives
// for the whole session, matching the advanced-features window of the
// original workflow this replaces.
type Session struct {
	workflow domain.Workflow
	catalog  *domain.Catalog
	warnings *WarningBuffer
	output   io.Writer
}

// NewSession creates a Session over a wired workflow. warnings must be the
// same buffer the workflow's sequencer warns into.
func NewSession(workflow domain.Workflow, catalog *domain.Catalog, warnings *WarningBuffer, output io.Writer) *Session {
	return &Session{
		workflow: workflow,
		catalog:  catalog,
		warnings: warnings,
		output:   output,
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (s *Session) Run() error {
	model := newSessionModel(s.workflow, s.catalog, s.warnings)

	program := tea.NewProgram(model, tea.WithOutput(s.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateForm
	stateResult
	stateHistory
)

// operation menu entries; key selects the form layout.
type opItem struct {
	key   string
	title string
	desc  string
}

func (i opItem) Title() string       { return i.title }
func (i opItem) Description() string { return i.desc }
func (i opItem) FilterValue() string { return i.title }

const (
	opKeyNumber     = "number"
	opKeyPrefix     = "prefix"
	opKeySuffix     = "suffix"
	opKeyTrimFirst  = "trim-first"
	opKeyTrimLast   = "trim-last"
	opKeyReplace    = "replace"
	opKeyQuick      = "quick"
	opKeyConvention = "convention"
	opKeyHistory    = "history"
	opKeyClear      = "clear"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	entryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// formField is one labelled text input of an operation form.
type formField struct {
	label string
	input textinput.Model
}

type sessionModel struct {
	workflow domain.Workflow
	catalog  *domain.Catalog
	warnings *WarningBuffer

	state  sessionState
	menu   list.Model
	opKey  string
	fields []formField
	focus  int

	applied      []m.HistoryEntry
	lastWarnings []string
	formErr      string

	historyOffset int
	width         int
	height        int
}

func newSessionModel(workflow domain.Workflow, catalog *domain.Catalog, warnings *WarningBuffer) sessionModel {
	items := []list.Item{
		opItem{key: opKeyNumber, title: "Rename and number", desc: "base name plus zero-padded sequence"},
		opItem{key: opKeyPrefix, title: "Add prefix", desc: "prepend text to each name"},
		opItem{key: opKeySuffix, title: "Add suffix", desc: "append text to each name"},
		opItem{key: opKeyTrimFirst, title: "Remove first character", desc: "skips single-character names"},
		opItem{key: opKeyTrimLast, title: "Remove last character", desc: "skips single-character names"},
		opItem{key: opKeyReplace, title: "Search and replace", desc: "literal, case-sensitive, all occurrences"},
		opItem{key: opKeyQuick, title: "Quick token", desc: "one-click affix from the token tables"},
		opItem{key: opKeyConvention, title: "Apply convention", desc: "prefix with a convention token"},
		opItem{key: opKeyHistory, title: "Renaming history", desc: "review this session's renames"},
		opItem{key: opKeyClear, title: "Clear history", desc: "empty the session ledger"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Rename"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return sessionModel{
		workflow: workflow,
		catalog:  catalog,
		warnings: warnings,
		state:    stateMenu,
		menu:     menu,
	}
}

// Init implements tea.Model.
func (sm sessionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.menu.SetSize(msg.Width, msg.Height-2)

		return sm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return sm, tea.Quit
		}

		switch sm.state {
		case stateMenu:
			return sm.updateMenu(msg)
		case stateForm:
			return sm.updateForm(msg)
		case stateResult:
			return sm.updateResult(msg)
		case stateHistory:
			return sm.updateHistory(msg)
		}
	}

	return sm, nil
}

func (sm sessionModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return sm, tea.Quit

	case "enter":
		item, ok := sm.menu.SelectedItem().(opItem)
		if !ok {
			return sm, nil
		}

		switch item.key {
		case opKeyHistory:
			sm.state = stateHistory
			sm.historyOffset = 0

			return sm, nil

		case opKeyClear:
			sm.workflow.ClearHistory()

			return sm, nil

		default:
			return sm.openForm(item.key), nil
		}
	}

	var cmd tea.Cmd
	sm.menu, cmd = sm.menu.Update(msg)

	return sm, cmd
}

// openForm builds the parameter inputs for the chosen operation. Every form
// ends with a scope field; defaults follow the original tool.
func (sm sessionModel) openForm(key string) sessionModel {
	sm.opKey = key
	sm.formErr = ""
	sm.fields = nil

	add := func(label, placeholder, value string) {
		input := textinput.New()
		input.Placeholder = placeholder
		input.SetValue(value)
		input.CharLimit = 128
		sm.fields = append(sm.fields, formField{label: label, input: input})
	}

	switch key {
	case opKeyNumber:
		add("Base name", "jnt", "")
		add("Start number", "", "1")
		add("Padding", "", "2")

	case opKeyPrefix, opKeySuffix:
		add("Text", "", "")
		add("Separator (none|underscore)", "", string(m.SeparatorNone))

	case opKeyReplace:
		add("Search", "", "")
		add("Replace", "", "")

	case opKeyQuick:
		add("Token ("+strings.Join(sm.catalog.QuickPrefixes(), " ")+" | suffixes)", "", "")

	case opKeyConvention:
		add("Convention ("+strings.Join(sm.catalog.Labels(), " ")+")", "", "")
	}

	add("Scope (selected|hierarchy|all)", "", string(m.ScopeSelected))

	sm.focus = 0
	sm.fields[0].input.Focus()
	sm.state = stateForm

	return sm
}

func (sm sessionModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		sm.state = stateMenu
		return sm, nil

	case "tab", "down":
		return sm.moveFocus(1), nil

	case "shift+tab", "up":
		return sm.moveFocus(-1), nil

	case "enter":
		if sm.focus < len(sm.fields)-1 {
			return sm.moveFocus(1), nil
		}

		return sm.applyForm()
	}

	var cmd tea.Cmd
	sm.fields[sm.focus].input, cmd = sm.fields[sm.focus].input.Update(msg)

	return sm, cmd
}

func (sm sessionModel) moveFocus(delta int) sessionModel {
	sm.fields[sm.focus].input.Blur()

	sm.focus += delta
	if sm.focus < 0 {
		sm.focus = len(sm.fields) - 1
	}

	if sm.focus >= len(sm.fields) {
		sm.focus = 0
	}

	sm.fields[sm.focus].input.Focus()

	return sm
}

// applyForm validates the inputs, runs the batch, and switches to the result
// view. Validation failures stay on the form.
func (sm sessionModel) applyForm() (tea.Model, tea.Cmd) {
	args, err := sm.buildArgs()
	if err != nil {
		sm.formErr = err.Error()
		return sm, nil
	}

	applied, err := sm.workflow.Rename(args)
	if err != nil {
		sm.formErr = err.Error()
		return sm, nil
	}

	sm.applied = applied
	sm.lastWarnings = sm.warnings.Drain()
	sm.state = stateResult

	return sm, nil
}

func (sm sessionModel) buildArgs() (domain.RenameArgs, error) {
	values := make([]string, len(sm.fields))
	for i, field := range sm.fields {
		values[i] = strings.TrimSpace(field.input.Value())
	}

	scope, err := m.ParseScope(values[len(values)-1])
	if err != nil {
		return domain.RenameArgs{}, err
	}

	var op m.Operation

	switch sm.opKey {
	case opKeyNumber:
		if values[0] == "" {
			return domain.RenameArgs{}, fmt.Errorf("base name is required")
		}

		start, err := strconv.Atoi(values[1])
		if err != nil {
			return domain.RenameArgs{}, fmt.Errorf("start number: %w", err)
		}

		padding, err := strconv.Atoi(values[2])
		if err != nil {
			return domain.RenameArgs{}, fmt.Errorf("padding: %w", err)
		}

		op = m.Numbering{Base: values[0], Start: start, Padding: padding}

	case opKeyPrefix, opKeySuffix:
		separator, err := m.ParseSeparator(values[1])
		if err != nil {
			return domain.RenameArgs{}, err
		}

		position := m.PositionPrefix
		if sm.opKey == opKeySuffix {
			position = m.PositionSuffix
		}

		op = m.Affix{Text: values[0], Position: position, Separator: separator}

	case opKeyTrimFirst:
		op = m.Trim{Side: m.SideFirst}

	case opKeyTrimLast:
		op = m.Trim{Side: m.SideLast}

	case opKeyReplace:
		if values[0] == "" {
			return domain.RenameArgs{}, fmt.Errorf("search term is required")
		}

		op = m.SearchReplace{Search: values[0], Replace: values[1]}

	case opKeyQuick:
		affix, err := sm.catalog.QuickAffix(values[0])
		if err != nil {
			return domain.RenameArgs{}, err
		}

		op = affix

	case opKeyConvention:
		token, err := sm.catalog.Token(values[0])
		if err != nil {
			return domain.RenameArgs{}, err
		}

		op = m.ConventionTag{Token: token}

	default:
		return domain.RenameArgs{}, fmt.Errorf("unknown operation %q", sm.opKey)
	}

	return domain.RenameArgs{Op: op, Scope: scope}, nil
}

func (sm sessionModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		sm.state = stateMenu
		return sm, nil
	}

	return sm, nil
}

func (sm sessionModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		sm.state = stateMenu
		return sm, nil

	case "c":
		sm.workflow.ClearHistory()
		sm.historyOffset = 0

		return sm, nil

	case "up", "k":
		if sm.historyOffset > 0 {
			sm.historyOffset--
		}

		return sm, nil

	case "down", "j":
		if sm.historyOffset < sm.maxHistoryOffset() {
			sm.historyOffset++
		}

		return sm, nil
	}

	return sm, nil
}

func (sm sessionModel) maxHistoryOffset() int {
	visible := sm.historyRows()
	entries := len(sm.workflow.History())

	if entries <= visible {
		return 0
	}

	return entries - visible
}

func (sm sessionModel) historyRows() int {
	rows := sm.height - 4
	if rows < 1 {
		rows = 8
	}

	return rows
}

// View implements tea.Model.
func (sm sessionModel) View() string {
	switch sm.state {
	case stateForm:
		return sm.viewForm()
	case stateResult:
		return sm.viewResult()
	case stateHistory:
		return sm.viewHistory()
	default:
		return sm.menu.View()
	}
}

func (sm sessionModel) viewForm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(sm.formTitle()) + "\n\n")

	for _, field := range sm.fields {
		b.WriteString(labelStyle.Render(field.label+": ") + field.input.View() + "\n")
	}

	if sm.formErr != "" {
		b.WriteString("\n" + warningStyle.Render(sm.formErr) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter apply · tab next field · esc back"))

	return b.String()
}

func (sm sessionModel) formTitle() string {
	for _, item := range sm.menu.Items() {
		if op, ok := item.(opItem); ok && op.key == sm.opKey {
			return op.title
		}
	}

	return "Rename"
}

func (sm sessionModel) viewResult() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Renamed %d object(s)", len(sm.applied))) + "\n\n")

	for _, entry := range sm.applied {
		b.WriteString(entryStyle.Render(entry.String()) + "\n")
	}

	for _, warning := range sm.lastWarnings {
		b.WriteString(warningStyle.Render("warning: "+warning) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc back"))

	return b.String()
}

func (sm sessionModel) viewHistory() string {
	var b strings.Builder

	entries := sm.workflow.History()

	b.WriteString(titleStyle.Render(fmt.Sprintf("Renaming history (%d)", len(entries))) + "\n\n")

	rows := sm.historyRows()

	end := sm.historyOffset + rows
	if end > len(entries) {
		end = len(entries)
	}

	for _, entry := range entries[sm.historyOffset:end] {
		b.WriteString(entry.String() + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ scroll · c clear · esc back"))

	return b.String()
}

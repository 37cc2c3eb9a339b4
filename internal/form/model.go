package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/growform/internal/autogrow"
	"github.com/muurk/growform/internal/entries"
	"github.com/muurk/growform/internal/logging"
)

// Mode is the input mode of the form
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

// flushHeightsMsg applies row height updates deferred during the previous message.
type flushHeightsMsg struct{}

// Options configures the form screen.
type Options struct {
	Placeholder string // Label shown under empty rows
	MinLines    int    // Height floor of a row, in lines
	MaxWidth    int    // Row width cap; 0 means use the terminal width
}

// Model is the form screen: one auto-growing row per entry plus the trailing
// empty row.
type Model struct {
	list     *entries.List
	binding  *loggedBinding
	queue    *autogrow.Queue
	measurer autogrow.Measurer
	opts     Options

	// rows[i] is bound to list index i; the last row is the virtual trailing slot.
	rows []*autogrow.Row

	// marked holds the identities of rows selected for deletion.
	marked map[string]bool

	Cursor int
	Mode   Mode

	// UI state
	Width  int
	Height int
	Status string

	editor   textarea.Model
	viewport viewport.Model

	Help        help.Model
	NormalKeys  normalKeyMap
	EditingKeys editingKeyMap

	Quitting bool
}

// New creates the form screen over list. The list is owned by the form for the
// lifetime of the program.
func New(list *entries.List, opts Options) Model {
	if opts.MinLines < 1 {
		opts.MinLines = 1
	}

	editor := textarea.New()
	editor.Prompt = ""
	editor.Placeholder = ""
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.FocusedStyle.CursorLine = lipgloss.NewStyle()

	m := Model{
		list:        list,
		binding:     &loggedBinding{list: list},
		queue:       &autogrow.Queue{},
		measurer:    LineMeasurer{},
		opts:        opts,
		marked:      make(map[string]bool),
		Mode:        ModeNormal,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		editor:      editor,
		viewport:    viewport.New(DefaultWidth-chromeColumns, DefaultHeight-chromeLines),
		Help:        help.New(),
		NormalKeys:  newNormalKeyMap(),
		EditingKeys: newEditingKeyMap(),
	}

	m.syncRows()
	m.layout()
	return m
}

// WithMeasurer replaces the row measurer. Rows are remounted.
func (m Model) WithMeasurer(measurer autogrow.Measurer) Model {
	m.measurer = measurer
	m.rows = nil
	m.syncRows()
	m.layout()
	return m
}

// Entries returns a copy of the entry list.
func (m Model) Entries() []string {
	return m.list.Values()
}

// Rows returns the mounted rows, trailing row included.
func (m Model) Rows() []*autogrow.Row {
	return m.rows
}

// Marked reports whether the row at index is marked for deletion.
func (m Model) Marked(index int) bool {
	if index < 0 || index >= len(m.rows) {
		return false
	}
	return m.marked[m.rows[index].ID()]
}

// PendingHeights returns the number of height updates waiting for the next tick.
func (m Model) PendingHeights() int {
	return m.queue.Len()
}

// Init initializes the form
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()

	case flushHeightsMsg:
		applied := m.queue.Flush()
		if applied > 0 {
			logging.Debug("Applied deferred row heights", zap.Int("count", applied))
		}
		m.syncEditorHeight()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Mode {
		case ModeEditing:
			cmd = m.updateEditing(msg)
		default:
			cmd = m.updateNormal(msg)
		}

	default:
		if m.Mode == ModeEditing {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	m.layout()
	return m, tea.Batch(cmd, m.flushCmd())
}

// updateNormal handles keys while navigating
func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.NormalKeys.Quit):
		m.Quitting = true
		return tea.Quit

	case key.Matches(msg, m.NormalKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.NormalKeys.Down):
		if m.Cursor < len(m.rows)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.NormalKeys.Edit):
		return m.startEditing()

	case key.Matches(msg, m.NormalKeys.Mark):
		m.toggleMark()

	case key.Matches(msg, m.NormalKeys.ClearMarks):
		m.marked = make(map[string]bool)
		m.Status = ""

	case key.Matches(msg, m.NormalKeys.Delete):
		m.deleteSelection()
	}

	return nil
}

// updateEditing forwards keys to the editor and pushes edits into the focused row
func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.EditingKeys.Done) {
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.applyEdit(m.editor.Value())
	return cmd
}

// applyEdit is the content-changed hook of the focused row.
func (m *Model) applyEdit(text string) {
	row := m.rows[m.Cursor]
	before := m.list.Len()
	row.SetText(text)

	// Writing into the trailing row materializes it; mount a new trailing row.
	if m.list.Len() != before {
		m.syncRows()
	}
}

func (m *Model) startEditing() tea.Cmd {
	row := m.rows[m.Cursor]
	m.Mode = ModeEditing
	m.Status = ""
	m.editor.SetWidth(m.rowWidth())
	m.editor.SetHeight(row.Height())
	m.editor.SetValue(row.Text())
	return m.editor.Focus()
}

func (m *Model) stopEditing() {
	m.editor.Blur()
	m.Mode = ModeNormal
}

func (m *Model) toggleMark() {
	if m.Cursor >= m.list.Len() {
		// The trailing row has no entry to delete.
		return
	}
	id := m.rows[m.Cursor].ID()
	if m.marked[id] {
		delete(m.marked, id)
	} else {
		m.marked[id] = true
	}
	m.Status = fmt.Sprintf("%d marked", len(m.marked))
}

// deleteSelection deletes the marked rows, or the focused row when nothing is marked.
func (m *Model) deleteSelection() {
	indices := make(map[int]struct{})
	if len(m.marked) > 0 {
		for i, row := range m.rows {
			if m.marked[row.ID()] {
				indices[i] = struct{}{}
			}
		}
	} else {
		indices[m.Cursor] = struct{}{}
	}

	removed := m.list.Delete(indices)
	logging.LogEntryDelete(entries.SortedIndices(indices), removed, m.list.Len())

	m.marked = make(map[string]bool)
	m.syncRows()
	if m.Cursor > len(m.rows)-1 {
		m.Cursor = len(m.rows) - 1
	}

	if removed == 0 {
		m.Status = "nothing to delete"
	} else {
		m.Status = fmt.Sprintf("deleted %d", removed)
	}
}

// syncRows makes rows match the list: one row per entry plus the trailing
// row. Rows are matched by identity, so surviving rows keep their measured
// height across deletions.
func (m *Model) syncRows() {
	existing := make(map[string]*autogrow.Row, len(m.rows))
	for _, row := range m.rows {
		existing[row.ID()] = row
	}

	width := m.rowWidth()
	rows := make([]*autogrow.Row, 0, m.list.Len()+1)
	for i := 0; i <= m.list.Len(); i++ {
		id := m.list.ID(i)
		if row, ok := existing[id]; ok {
			if row.Index() != i {
				row.Rebind(i)
			}
			rows = append(rows, row)
			continue
		}
		rows = append(rows, autogrow.Mount(m.binding, i, width, m.measurer, m.queue,
			autogrow.WithID(id),
			autogrow.WithMinHeight(m.opts.MinLines),
			autogrow.WithHeightObserver(func(r *autogrow.Row, from, to int) {
				logging.LogHeightChange(r.ID(), from, to)
			}),
		))
	}
	m.rows = rows
}

// resize propagates the new width to every row and to the editor
func (m *Model) resize() {
	width := m.rowWidth()
	for _, row := range m.rows {
		row.SetWidth(width)
	}
	m.editor.SetWidth(width)
	m.viewport.Width = m.Width - chromeColumns
	m.viewport.Height = max(m.Height-chromeLines, 1)
}

// syncEditorHeight matches the editor to the focused row once its height is applied
func (m *Model) syncEditorHeight() {
	if m.Mode != ModeEditing {
		return
	}
	m.editor.SetHeight(m.rows[m.Cursor].Height())
}

// rowWidth is the width rows are measured and rendered at
func (m Model) rowWidth() int {
	width := m.Width - chromeColumns - gutterColumns
	if m.opts.MaxWidth > 0 && width > m.opts.MaxWidth {
		width = m.opts.MaxWidth
	}
	return max(width, 1)
}

// flushCmd schedules the next tick when height updates are waiting
func (m Model) flushCmd() tea.Cmd {
	if m.queue.Len() == 0 {
		return nil
	}
	return func() tea.Msg {
		return flushHeightsMsg{}
	}
}

// layout renders the rows into the viewport and keeps the focused row visible
func (m *Model) layout() {
	var blocks []string
	top, bottom := 0, 0
	line := 0
	for i := range m.rows {
		block := m.renderRow(i)
		h := lipgloss.Height(block)
		if i == m.Cursor {
			top, bottom = line, line+h
		}
		line += h
		blocks = append(blocks, block)
	}
	if m.Status != "" {
		blocks = append(blocks, StatusStyle.Render(m.Status))
	}

	m.viewport.SetContent(strings.Join(blocks, "\n"))

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// renderRow renders the text block, the separator and, for empty rows, the placeholder
func (m Model) renderRow(i int) string {
	row := m.rows[i]
	width := m.rowWidth()
	focused := i == m.Cursor

	var body string
	if focused && m.Mode == ModeEditing {
		body = m.editor.View()
	} else {
		style := RowTextStyle
		if focused {
			style = FocusedRowTextStyle
		}
		body = style.
			Width(width).
			Height(row.Height()).
			MaxHeight(row.Height()).
			Render(row.Text())
	}

	parts := []string{body, RenderSeparator(width)}
	if row.ShowsPlaceholder() && m.opts.Placeholder != "" {
		parts = append(parts, PlaceholderStyle.Render(m.opts.Placeholder))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, parts...)

	gutter := "  "
	switch {
	case m.marked[row.ID()]:
		gutter = MarkedMarkerStyle.Render(markedMarker) + " "
	case focused:
		gutter = FocusMarkerStyle.Render(focusMarker) + " "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, block)
}

// View renders the form
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var helpText string
	if m.Mode == ModeEditing {
		helpText = m.Help.View(m.EditingKeys)
	} else {
		helpText = m.Help.View(m.NormalKeys)
	}

	return RenderApplicationContainer(m.viewport.View(), helpText, m.Width, m.Height)
}

// loggedBinding writes row edits into the entry list
type loggedBinding struct {
	list *entries.List
}

func (b *loggedBinding) Read(index int) string {
	return b.list.Read(index)
}

func (b *loggedBinding) Write(index int, value string) {
	materialized := index >= b.list.Len()
	b.list.Write(index, value)
	logging.LogEntryWrite(index, b.list.Len(), materialized)
}

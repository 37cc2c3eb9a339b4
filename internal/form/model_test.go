package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/growform/internal/entries"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok, "Update must return a form.Model")
	}
	return m
}

func TestNew_RendersTrailingRow(t *testing.T) {
	m := New(entries.NewEmpty(3), Options{Placeholder: "Placeholder"})

	require.Len(t, m.Rows(), 4)
	last := m.Rows()[3]
	assert.Equal(t, 3, last.Index())
	assert.True(t, last.ShowsPlaceholder())
	assert.Equal(t, []string{"", "", ""}, m.Entries())
}

func TestTypingIntoTrailingRowAppends(t *testing.T) {
	m := New(entries.NewEmpty(3), Options{})
	trailingID := m.Rows()[3].ID()

	m = send(t, m, keyDown, keyDown, keyDown, keyEnter)
	require.Equal(t, ModeEditing, m.Mode)
	require.Equal(t, 3, m.Cursor)

	m = send(t, m, runes("hello"))

	assert.Equal(t, []string{"", "", "", "hello"}, m.Entries())
	require.Len(t, m.Rows(), 5, "a new trailing row appears")
	assert.Equal(t, trailingID, m.Rows()[3].ID(), "the edited row keeps its identity")
	assert.True(t, m.Rows()[4].ShowsPlaceholder())
}

func TestEditingExistingRow(t *testing.T) {
	m := New(entries.New("a", "b"), Options{})

	m = send(t, m, keyDown, keyEnter, runes("c"), keyEsc)

	assert.Equal(t, ModeNormal, m.Mode)
	assert.Equal(t, []string{"a", "bc"}, m.Entries())
	assert.Len(t, m.Rows(), 3)
}

func TestHeightAppliedOnNextTick(t *testing.T) {
	m := New(entries.New(""), Options{MinLines: 1})
	row := m.Rows()[0]
	require.Equal(t, 1, row.Height())

	m = send(t, m, keyEnter, runes("one"), keyEnter, runes("two"), keyEnter, runes("three"))
	require.Equal(t, "one\ntwo\nthree", m.Entries()[0])

	assert.Equal(t, 1, row.Height(), "height must not change inside the edit")
	assert.Greater(t, m.PendingHeights(), 0)

	m = send(t, m, flushHeightsMsg{})
	assert.Equal(t, 3, row.Height())
	assert.Equal(t, 0, m.PendingHeights())
}

func TestMinLinesFloor(t *testing.T) {
	m := New(entries.New("short"), Options{MinLines: 3})
	assert.Equal(t, 3, m.Rows()[0].Height())
	assert.Equal(t, 3, m.Rows()[1].Height())
}

func TestDeleteMarkedRows(t *testing.T) {
	m := New(entries.New("a", "b", "c"), Options{})
	idB := m.Rows()[1].ID()

	m = send(t, m, keySpace, keyDown, keyDown, keySpace)
	assert.True(t, m.Marked(0))
	assert.True(t, m.Marked(2))
	assert.False(t, m.Marked(1))

	m = send(t, m, runes("d"))

	assert.Equal(t, []string{"b"}, m.Entries())
	require.Len(t, m.Rows(), 2)
	assert.Equal(t, idB, m.Rows()[0].ID(), "surviving row keeps its identity")
	assert.Equal(t, 0, m.Rows()[0].Index())
	assert.Equal(t, 1, m.Cursor, "cursor is clamped to the remaining rows")
	assert.False(t, m.Marked(0))
	assert.Equal(t, "deleted 2", m.Status)
}

func TestDeleteFocusedRow(t *testing.T) {
	m := New(entries.New("a", "b", "c"), Options{})

	m = send(t, m, keyDown, runes("d"))

	assert.Equal(t, []string{"a", "c"}, m.Entries())
	assert.Equal(t, "c", m.Rows()[1].Text())
}

func TestDeleteTrailingRowIsNoop(t *testing.T) {
	m := New(entries.New("a"), Options{})

	m = send(t, m, keyDown, runes("d"))

	assert.Equal(t, []string{"a"}, m.Entries())
	assert.Len(t, m.Rows(), 2)
	assert.Equal(t, "nothing to delete", m.Status)
}

func TestTrailingRowCannotBeMarked(t *testing.T) {
	m := New(entries.New("a"), Options{})

	m = send(t, m, keyDown, keySpace)
	assert.False(t, m.Marked(1))
}

func TestClearMarks(t *testing.T) {
	m := New(entries.New("a", "b"), Options{})

	m = send(t, m, keySpace, runes("x"), runes("d"))
	assert.Equal(t, []string{"b"}, m.Entries(), "with marks cleared d deletes the focused row")
}

func TestCursorBounds(t *testing.T) {
	m := New(entries.New("a"), Options{})

	m = send(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor)

	m = send(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 1, m.Cursor)
}

func TestWindowResizePropagatesWidth(t *testing.T) {
	m := New(entries.New("a", "b"), Options{})

	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	for _, row := range m.Rows() {
		assert.Equal(t, 40-chromeColumns-gutterColumns, row.Width())
	}

	capped := New(entries.New("a"), Options{MaxWidth: 20})
	capped = send(t, capped, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 20, capped.Rows()[0].Width())
}

func TestResizeRewrapsRows(t *testing.T) {
	long := strings.Repeat("word ", 20)
	m := New(entries.New(long), Options{})
	m = send(t, m, flushHeightsMsg{})
	wide := m.Rows()[0].Height()

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 20}, flushHeightsMsg{})
	assert.Greater(t, m.Rows()[0].Height(), wide)
}

func TestQuit(t *testing.T) {
	m := New(entries.New("a"), Options{})

	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)

	assert.True(t, m.Quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestQuitKeyIsTextWhileEditing(t *testing.T) {
	m := New(entries.New(""), Options{})

	m = send(t, m, keyEnter, runes("q"))
	assert.False(t, m.Quitting)
	assert.Equal(t, []string{"q"}, m.Entries())
}

func TestView(t *testing.T) {
	m := New(entries.New("first entry", ""), Options{Placeholder: "Write something"})
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := m.View()
	assert.Contains(t, view, AppName)
	assert.Contains(t, view, "first entry")
	assert.Contains(t, view, "Write something")
}

func TestLineMeasurer(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    int
	}{
		{name: "empty", content: "", width: 40, want: 1},
		{name: "single line", content: "hello", width: 40, want: 1},
		{name: "explicit newlines", content: "a\nb\nc", width: 40, want: 3},
		{name: "hard wrap", content: strings.Repeat("x", 30), width: 11, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineMeasurer{}.Measure(tt.content, tt.width))
		})
	}
}

// Package form implements the interactive growform screen.
//
// The screen is a Bubble Tea model showing one multi-line row per entry plus
// a trailing empty row. Typing into the trailing row appends a new entry and
// a fresh trailing row appears below it. Rows grow and shrink with their
// content: each one is an autogrow.Row measured by LineMeasurer.
//
// # Modes
//
//   - Normal: ↑/↓ move between rows, Enter edits, Space marks a row,
//     d deletes the marked rows (or the focused row), x clears marks, q quits
//   - Editing: keys go to a bubbles/textarea; Enter inserts a newline and
//     Esc returns to Normal mode
//
// # Height Updates
//
// Row height changes are queued while a message is handled and applied when
// the following flushHeightsMsg arrives, so a height never changes in the
// middle of the update that caused it. Update returns the command producing
// that message whenever the queue is non-empty.
//
// # Usage Example
//
//	list := entries.NewEmpty(3)
//	final, err := form.Run(list, form.Options{Placeholder: "Placeholder"})
package form

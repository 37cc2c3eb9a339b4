package form

import (
	"github.com/charmbracelet/lipgloss"
)

// LineMeasurer measures text in terminal lines by wrapping it at the row width.
type LineMeasurer struct{}

// Measure implements autogrow.Measurer.
func (LineMeasurer) Measure(content string, width int) int {
	// The editor keeps one cell free for the cursor at the end of a line.
	if width > 1 {
		width--
	}
	if width < 1 {
		width = 1
	}
	return lipgloss.Height(lipgloss.NewStyle().Width(width).Render(content))
}

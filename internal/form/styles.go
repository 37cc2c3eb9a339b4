package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/growform/internal/version"
)

// Application branding constants
const (
	AppName   = "GROWFORM"
	GitHubURL = "github.com/muurk/growform"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	DefaultWidth  = 80 // Used until the first tea.WindowSizeMsg arrives
	DefaultHeight = 24

	// chromeLines is the height taken by the container border, header and footer.
	chromeLines = 6
	// chromeColumns is the width taken by the container border and padding.
	chromeColumns = 4
	// gutterColumns is the width of the focus/mark marker left of each row.
	gutterColumns = 2
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Row styles
var (
	// Text of an unfocused row
	RowTextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Text of the focused row while not editing
	FocusedRowTextStyle = lipgloss.NewStyle().
				Foreground(HighlightColor)

	// Thin rule drawn under every row
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Placeholder label shown under empty rows
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				PaddingLeft(1)

	// Focus gutter marker
	FocusMarkerStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Delete mark gutter marker
	MarkedMarkerStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Status line under the rows
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

const (
	focusMarker   = "▌"
	markedMarker  = "✗"
	separatorRune = "─"
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps screen content in the full-screen panel:
// header, content area and footer inside an outer border sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := BuildFooterContent(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-chromeColumns).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-chromeColumns).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - chromeColumns)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderSeparator draws the rule under a row.
func RenderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat(separatorRune, width))
}

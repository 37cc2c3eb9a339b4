package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Printer writes command output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth returns a copy of the printer rendering at a fixed width.
func (p *Printer) WithWidth(width int) *Printer {
	return &Printer{out: p.out, width: width}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintEntries prints the form entries as a summary box.
func (p *Printer) PrintEntries(entries []string) {
	p.Println(RenderEntries(entries, p.width))
}

// PrintEntriesYAML prints the form entries as a YAML document.
func (p *Printer) PrintEntriesYAML(entries []string) error {
	doc := struct {
		Entries []string `yaml:"entries"`
	}{Entries: entries}
	if doc.Entries == nil {
		doc.Entries = []string{}
	}

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	return enc.Close()
}

// RenderEntries renders the entries as a numbered list inside a bordered box
func RenderEntries(entries []string, width int) string {
	var lines []string

	title := fmt.Sprintf("%d %s", len(entries), plural(len(entries), "entry", "entries"))
	lines = append(lines, SummaryTitleStyle.Render(title))
	lines = append(lines, "")

	textWidth := width - 2 - 2 - EntryIndexStyle.GetWidth()
	if textWidth < 10 {
		textWidth = 10
	}

	for i, entry := range entries {
		index := EntryIndexStyle.Render(fmt.Sprintf("%d.", i+1))
		var body string
		if strings.TrimSpace(entry) == "" {
			body = EmptyEntryStyle.Render("(empty)")
		} else {
			body = EntryTextStyle.Width(textWidth).Render(entry)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, index, body))
	}

	return SummaryBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

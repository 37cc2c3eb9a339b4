package form

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/growform/internal/entries"
	"github.com/muurk/growform/internal/logging"
)

// Run shows the form full-screen until the user quits and returns the entries.
func Run(list *entries.List, opts Options, programOpts ...tea.ProgramOption) ([]string, error) {
	logging.Info("Form started",
		zap.Int("entries", list.Len()),
		zap.Int("min_lines", opts.MinLines),
	)

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(New(list, opts), programOpts...)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("form exited with error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}

	values := m.Entries()
	logging.Info("Form closed", zap.Int("entries", len(values)))
	return values, nil
}

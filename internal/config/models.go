package config

import "fmt"

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Output formats accepted by Preferences.OutputFormat.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Registry represents the entire user configuration file.
// It holds preferences only; form entries are never written to disk.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents the form's user preferences.
type Preferences struct {
	InitialEntries int    `yaml:"initial_entries"`     // Empty entries the form starts with
	Placeholder    string `yaml:"placeholder"`         // Label shown under empty rows
	MinLines       int    `yaml:"min_lines"`           // Height floor of a row, in terminal lines
	MaxWidth       int    `yaml:"max_width,omitempty"` // Row width cap; 0 uses the terminal width
	PrintOnExit    bool   `yaml:"print_on_exit"`       // Print entries after the form closes
	OutputFormat   string `yaml:"output_format"`       // "text" or "yaml"
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		InitialEntries: 3,
		Placeholder:    "Placeholder",
		MinLines:       1,
		MaxWidth:       0,
		PrintOnExit:    false,
		OutputFormat:   FormatText,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// Validate checks preference values for consistency.
func (p *Preferences) Validate() error {
	if p.InitialEntries < 0 {
		return fmt.Errorf("initial_entries must not be negative, got %d", p.InitialEntries)
	}
	if p.MinLines < 1 {
		return fmt.Errorf("min_lines must be at least 1, got %d", p.MinLines)
	}
	if p.MaxWidth < 0 {
		return fmt.Errorf("max_width must not be negative, got %d", p.MaxWidth)
	}
	switch p.OutputFormat {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unsupported output_format %q (expected %q or %q)", p.OutputFormat, FormatText, FormatYAML)
	}
	return nil
}

// fillDefaults replaces zero values left by a partial file with defaults.
func (p *Preferences) fillDefaults() {
	def := DefaultPreferences()
	if p.Placeholder == "" {
		p.Placeholder = def.Placeholder
	}
	if p.MinLines == 0 {
		p.MinLines = def.MinLines
	}
	if p.OutputFormat == "" {
		p.OutputFormat = def.OutputFormat
	}
}

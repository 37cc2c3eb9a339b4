// Package config manages growform's user preferences.
//
// Preferences live in a YAML file following OS-specific conventions:
//   - Linux: $XDG_CONFIG_HOME/growform/config.yaml or $HOME/.config/growform/config.yaml
//   - macOS: $HOME/.config/growform/config.yaml
//   - Windows: %LOCALAPPDATA%\growform\config.yaml
//
// The file only tunes how the form behaves (starting entries, placeholder,
// row height floor, output on exit). Entries themselves are never stored.
//
// # Usage Example
//
//	registry, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	prefs := registry.Preferences
//
// # File Format
//
//	version: 1
//	preferences:
//	  initial_entries: 3
//	  placeholder: Placeholder
//	  min_lines: 1
//	  print_on_exit: false
//	  output_format: text
package config

// Package ui renders growform's non-interactive output.
//
// The interactive form lives in package form. Once it closes, the command
// layer uses a Printer from this package to print what was entered, either
// as a styled summary box or as YAML for scripting:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintEntries(entries)
//
//	// or
//	if err := p.PrintEntriesYAML(entries); err != nil {
//	    return err
//	}
package ui

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/growform/internal/config"
	"github.com/muurk/growform/internal/entries"
	"github.com/muurk/growform/internal/form"
	"github.com/muurk/growform/internal/logging"
	"github.com/muurk/growform/internal/ui"
)

// Root command flags
var (
	configPath   string
	seedEntries  []string
	printOnExit  bool
	outputFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config directory)")
	rootCmd.Flags().StringArrayVar(&seedEntries, "entry", nil, "Start with this entry (repeatable; replaces the empty starting entries)")
	rootCmd.Flags().BoolVar(&printOnExit, "print", false, "Print the entries when the form closes")
	rootCmd.Flags().StringVar(&outputFormat, "format", "", "Output format for --print (text, yaml)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// loadPreferences reads the config file and applies command line overrides
func loadPreferences(cmd *cobra.Command) (*config.Preferences, error) {
	registry, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	prefs := registry.Preferences

	if cmd.Flags().Changed("print") {
		prefs.PrintOnExit = printOnExit
	}
	if outputFormat != "" {
		prefs.OutputFormat = outputFormat
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// newEntryList builds the starting list from --entry flags or the configured count
func newEntryList(prefs *config.Preferences) *entries.List {
	if len(seedEntries) > 0 {
		return entries.New(seedEntries...)
	}
	return entries.NewEmpty(prefs.InitialEntries)
}

func runForm(cmd *cobra.Command, args []string) error {
	prefs, err := loadPreferences(cmd)
	if err != nil {
		return err
	}

	list := newEntryList(prefs)
	values, err := form.Run(list, form.Options{
		Placeholder: prefs.Placeholder,
		MinLines:    prefs.MinLines,
		MaxWidth:    prefs.MaxWidth,
	})
	if err != nil {
		return err
	}

	if !prefs.PrintOnExit {
		return nil
	}
	return printEntries(cmd, values, prefs.OutputFormat)
}

func printEntries(cmd *cobra.Command, values []string, format string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	switch format {
	case config.FormatYAML:
		return printer.PrintEntriesYAML(values)
	default:
		printer.PrintEntries(values)
		return nil
	}
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the growform config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Example: `  # Write to the default location
  growform config init

  # Write somewhere else
  growform config init --config ./growform.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}
		logging.Info("Config file created", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

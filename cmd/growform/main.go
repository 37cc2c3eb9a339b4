// Growform is a terminal form of auto-growing multi-line text fields.
//
// The form starts with a few empty fields and always shows one extra empty
// field at the bottom; typing into it adds a new entry. Fields grow with
// their content and can be deleted individually or as a marked set.
// Entries live in memory only and can be printed when the form closes.
//
// Usage:
//
//	growform [flags]
//	growform [command]
//
// See 'growform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/growform/internal/logging"
	"github.com/muurk/growform/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "growform",
	Short: "A form of auto-growing text fields",
	Long: `Growform shows a form of multi-line text fields that grow with their
content. An empty field is always kept at the bottom: type into it to add an
entry. Mark fields with space and press d to delete them.

Entries are kept in memory only. Use --print to write them to stdout when the
form closes.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForm,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "growform %s\n", version.Full())
	},
}

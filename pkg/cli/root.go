package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/cssrand/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	logLevel string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"

	// logger is rebuilt from --log-level before any command runs.
	logger = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cssrand",
	Short: "cssrand generates random CSS value fragments for parser fuzzing",
	Long: `cssrand generates random, syntactically valid CSS value fragments
(integers, numbers, lengths, opacity values, colors) paired with the value
each fragment decodes to, for use as seed data in randomized or fuzz-style
testing of CSS parsers.

Pass --seed for reproducible output, or --profile to load a run profile
from a YAML or JSON file.`,
	// No Run function here means 'cssrand' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Main()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(logging.Config{Level: level, Format: logging.FormatText})
		return nil
	},
}

// Main runs the root command and returns the process exit code. Split from
// Execute so testscript harnesses can invoke the CLI in-process.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits. This is called by main.main().
func Execute() {
	os.Exit(Main())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")
}

// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for varsweep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"varsweep/internal/config"
	"varsweep/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// docFile is the document snapshot to audit
	docFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "varsweep",
		Short: "Audit named variables and cell aliases in a document",
		Long: TitleStyle.Render("varsweep") + SubtitleStyle.Render(" - Audit named variables and cell aliases in a document") + `

varsweep inspects a document snapshot for named variables held in
variable sets and for spreadsheet cell aliases, discovers where each
one is referenced, and removes the ones nothing references.

Document snapshots are CUE files describing the document's objects,
bindings, and spreadsheet cells.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Export a document snapshot to a CUE file
  2. Point varsweep at it with --doc (or the config file)
  3. Audit with: varsweep vars list

` + SubtitleStyle.Render("Examples:") + `
  varsweep vars list --doc model.cue        List variable sets
  varsweep vars children BoltVars           List variables of a set
  varsweep vars refs BoltVars.Diameter      Show references
  varsweep vars prune BoltVars.Unused       Remove if unreferenced
  varsweep aliases list                     List spreadsheet sheets
  varsweep config show                      Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/varsweep/config.cue)")
	rootCmd.PersistentFlags().StringVar(&docFile, "doc", "", "document snapshot file (CUE)")

	app := newApp()

	// Add subcommands
	rootCmd.AddCommand(newVarsCommand(app))
	rootCmd.AddCommand(newAliasesCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}

	if verbose {
		logger().SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

var rootLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "varsweep",
})

// logger returns the shared CLI logger. Debug level is enabled by the
// --verbose flag or the ui.verbose config setting.
func logger() *log.Logger {
	return rootLogger
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

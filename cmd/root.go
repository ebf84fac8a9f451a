package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"algotest/internal/config"

	// Importing a suite package registers its suites with the default
	// registry; run and list both operate on whatever is registered here.
	_ "algotest/internal/suites/indicators"
	_ "algotest/internal/suites/smoke"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution with every test passing.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error or a run with bad results.
	ExitCodeError = 1
	// ExitCodeConfigInvalid indicates the configuration was rejected.
	ExitCodeConfigInvalid = 2
)

// rootCmd represents the base command for the algotest application.
var rootCmd = &cobra.Command{
	Use:   "algotest",
	Short: "Self-hosted test runner for trading algorithms",
	Long: `algotest executes verification suites for indicators and signal logic
against a simulated bar-clock host, the way they would run when attached
to a chart on a live platform.

Suites register themselves at startup; run executes them, list shows
what would run without executing anything.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. It is called from the
// main package to inject the build version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It is called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "algotest version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code based on the error type, for
// scripting and CI.
func getExitCode(err error) int {
	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ExitCodeConfigInvalid
	}

	var validationErr config.ValidationError
	if errors.As(err, &validationErr) {
		return ExitCodeConfigInvalid
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// Package cli defines the modship command tree and maps workflow errors
// to process exit codes. Commands return typed errors; main owns process
// termination.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calegray/modship/internal/changelog"
	clierrors "github.com/calegray/modship/internal/errors"
	"github.com/calegray/modship/internal/prompt"
)

// Command group identifiers for help output.
const (
	GroupRelease       = "release"
	GroupConfiguration = "configuration"
)

var (
	configFlag string
	yesFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "modship",
	Short: "Interactive build and release tool for game mods",
	Long: `modship walks you through cutting a mod release: pick a destination,
pick a build method, negotiate the next semantic version, resolve a dated
changelog entry for it, then run the configured build command.

Configuration lives in .modship/config.yml (project) and
~/.config/modship/config.yml (user); MODSHIP_* environment variables
override both.`,
	Example: `  modship release                # Interactive release workflow
  modship changelog check        # Validate the changelog entry format
  modship changelog show 1.2.0   # Print the entry for a version
  modship init                   # Write a commented starter config`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to project config file (default .modship/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Answer confirmation prompts with their default")
}

// Execute runs the root command and returns the resulting error for main
// to translate into an exit code.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, prompt.ErrAborted) {
		return ExitUserAbort
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.InvalidInput:
			return ExitInvalidInput
		case clierrors.NotFound:
			return ExitNotFound
		case clierrors.UserAbort:
			return ExitUserAbort
		}
		return ExitFailure
	}

	var notFound *changelog.NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFound
	}
	var invalidEntry *changelog.InvalidEntryError
	if errors.As(err, &invalidEntry) {
		return ExitInvalidInput
	}

	return ExitFailure
}

// PrintError writes err to stderr in its most helpful form: a short
// message for user aborts, structured remediation for CLI errors, and a
// categorized fallback otherwise.
func PrintError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		return
	}
	clierrors.PrintSimpleError(err, clierrors.External)
}

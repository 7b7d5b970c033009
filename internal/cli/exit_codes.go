package cli

// Exit codes for the modship CLI.
// These codes support scripting and CI integration; user cancellation is
// always distinguishable from a failed build.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a fatal or external failure (shell, fs, git)
	ExitFailure = 1

	// ExitInvalidInput indicates input that failed validation
	ExitInvalidInput = 2

	// ExitNotFound indicates a missing changelog entry or version
	ExitNotFound = 3

	// ExitUserAbort indicates the user cancelled a prompt or declined a
	// confirmation; matches the shell convention for interrupted runs
	ExitUserAbort = 130
)

package errors

import "fmt"

// Common error constructors with pre-baked remediation guidance.

// ChangelogNotReadable reports a changelog file that could not be opened.
func ChangelogNotReadable(path string, err error) *CLIError {
	return WrapWithMessage(err, External,
		fmt.Sprintf("cannot read changelog %s", path),
		fmt.Sprintf("Check that %s exists and is readable", path),
		"Set changelog_path in .modship/config.yml to the correct file",
	)
}

// EntryNotFound reports a missing changelog entry after elicitation failed.
func EntryNotFound(version string) *CLIError {
	return NewNotFoundError(
		fmt.Sprintf("no changelog entry for version %s", version),
		fmt.Sprintf("Add a dated entry for %s to the changelog", version),
		"Run 'modship release' again and author the entry when prompted",
	)
}

// BuildFailed reports a build command that exited non-zero.
func BuildFailed(method string, exitCode int) *CLIError {
	return NewExternalError(
		fmt.Sprintf("build method %q failed with exit code %d", method, exitCode),
		"Inspect the build output above for the underlying failure",
		fmt.Sprintf("Check the %q command in .modship/config.yml", method),
	)
}

// NoBuildMethods reports a configuration with no usable build methods.
func NoBuildMethods() *CLIError {
	return NewInvalidInputError(
		"no build methods configured",
		"Add at least one entry under build_methods in .modship/config.yml",
		"Run 'modship init' to write a commented starter config",
	)
}

// Package errors provides structured error handling for the modship CLI.
// Errors carry a category and actionable remediation steps; the top-level
// driver maps categories to exit codes, so no component calls os.Exit.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies what went wrong.
type Category int

const (
	// InvalidInput covers user-supplied versions or changelog text that
	// fail validation. Usually recovered by re-prompting.
	InvalidInput Category = iota
	// NotFound covers a missing changelog entry for the target version.
	NotFound
	// UserAbort covers explicit cancellation or a declined confirmation.
	UserAbort
	// External covers failures surfaced by collaborators: the shell,
	// the file system, the git repository.
	External
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case InvalidInput:
		return "Invalid Input"
	case NotFound:
		return "Not Found"
	case UserAbort:
		return "Aborted"
	case External:
		return "External Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the kind of error (InvalidInput, NotFound, ...).
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional).
	Usage string
	// Cause is the wrapped underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    InvalidInput,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    NotFound,
		Message:     message,
		Remediation: remediation,
	}
}

// NewUserAbortError creates a user-abort error.
func NewUserAbortError(message string) *CLIError {
	return &CLIError{
		Category: UserAbort,
		Message:  message,
	}
}

// NewExternalError creates an external-failure error.
func NewExternalError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    External,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original
// message and keeping the cause reachable via errors.Unwrap.
func Wrap(err error, category Category, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError, unwrapping as
// needed. Returns nil if no CLIError is in the chain.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

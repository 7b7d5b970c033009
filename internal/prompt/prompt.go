// Package prompt models interactive terminal input as a synchronous
// request/response capability. The release components depend only on the
// Prompter interface, so tests substitute a scripted double and never
// touch a real terminal.
package prompt

import "errors"

// ErrAborted is returned when the user cancels a prompt (ctrl+c or esc).
// Callers must not continue past it; the top-level driver maps it to the
// user-abort exit status.
var ErrAborted = errors.New("aborted by user")

// InputSpec describes a single-line text prompt.
type InputSpec struct {
	// Message is the question shown to the user.
	Message string
	// Default is the pre-filled answer, accepted as-is on enter.
	Default string
	// Validate rejects an answer before it is accepted. The prompter
	// re-asks until the hook passes, so callers never see invalid input.
	Validate func(string) error
}

// TextSpec describes a multi-line text prompt.
type TextSpec struct {
	Message string
	// Seed pre-populates the editor with existing content.
	Seed string
	// Validate rejects the submitted text; re-ask semantics match InputSpec.
	Validate func(string) error
}

// Option is one selectable choice. Value is what the caller receives;
// Label is what the user sees.
type Option struct {
	Label string
	Value string
}

// SelectSpec describes a single-choice menu. The first option is the
// initial selection.
type SelectSpec struct {
	Message string
	Options []Option
}

// ConfirmSpec describes a yes/no question.
type ConfirmSpec struct {
	Message string
	Default bool
}

// Prompter asks the user one question at a time and blocks until an
// answer arrives or the user cancels.
type Prompter interface {
	Input(spec InputSpec) (string, error)
	Text(spec TextSpec) (string, error)
	Select(spec SelectSpec) (string, error)
	Confirm(spec ConfirmSpec) (bool, error)
}

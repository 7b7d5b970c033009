package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Terminal is the real Prompter, rendering prompts with huh.
type Terminal struct{}

// NewTerminal returns a Prompter that asks questions on the controlling
// terminal.
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Input(spec InputSpec) (string, error) {
	value := spec.Default

	field := huh.NewInput().
		Title(spec.Message).
		Value(&value)
	if spec.Validate != nil {
		field = field.Validate(spec.Validate)
	}

	if err := runField(field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) Text(spec TextSpec) (string, error) {
	value := spec.Seed

	field := huh.NewText().
		Title(spec.Message).
		CharLimit(8192).
		Lines(10).
		Value(&value)
	if spec.Validate != nil {
		field = field.Validate(spec.Validate)
	}

	if err := runField(field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) Select(spec SelectSpec) (string, error) {
	options := make([]huh.Option[string], len(spec.Options))
	for i, o := range spec.Options {
		options[i] = huh.NewOption(o.Label, o.Value)
	}

	var value string
	field := huh.NewSelect[string]().
		Title(spec.Message).
		Options(options...).
		Value(&value)

	if err := runField(field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) Confirm(spec ConfirmSpec) (bool, error) {
	value := spec.Default

	field := huh.NewConfirm().
		Title(spec.Message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := runField(field); err != nil {
		return false, err
	}
	return value, nil
}

// runField runs a single field as its own form and normalizes huh's
// cancellation error to ErrAborted.
func runField(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

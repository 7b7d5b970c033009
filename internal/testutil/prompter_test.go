package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegray/modship/internal/prompt"
)

func TestScriptedPrompter_ReplaysInOrder(t *testing.T) {
	p := NewScriptedPrompter(
		InputAnswer("./dist"),
		ConfirmAnswer(true),
	)

	got, err := p.Input(prompt.InputSpec{Message: "Destination"})
	require.NoError(t, err)
	assert.Equal(t, "./dist", got)

	yes, err := p.Confirm(prompt.ConfirmSpec{Message: "Proceed?"})
	require.NoError(t, err)
	assert.True(t, yes)

	assert.True(t, p.Exhausted())
	assert.Equal(t, []string{"Destination", "Proceed?"}, p.Messages)
}

func TestScriptedPrompter_UnexpectedPromptFails(t *testing.T) {
	p := NewScriptedPrompter()

	_, err := p.Input(prompt.InputSpec{Message: "Destination"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected input prompt")
}

func TestScriptedPrompter_KindMismatchFails(t *testing.T) {
	p := NewScriptedPrompter(ConfirmAnswer(true))

	_, err := p.Input(prompt.InputSpec{Message: "Destination"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a confirm prompt")
}

func TestScriptedPrompter_ValidationReasks(t *testing.T) {
	p := NewScriptedPrompter(
		InputAnswer("bad"),
		InputAnswer("good"),
	)
	validate := func(s string) error {
		if s == "bad" {
			return fmt.Errorf("try again")
		}
		return nil
	}

	got, err := p.Input(prompt.InputSpec{Message: "Value", Validate: validate})

	require.NoError(t, err)
	assert.Equal(t, "good", got)
	assert.True(t, p.Exhausted())
}

func TestScriptedPrompter_ValidationFailureWithoutRetryErrors(t *testing.T) {
	p := NewScriptedPrompter(InputAnswer("bad"))
	validate := func(string) error { return fmt.Errorf("nope") }

	_, err := p.Input(prompt.InputSpec{Message: "Value", Validate: validate})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestScriptedPrompter_SkipValidate(t *testing.T) {
	p := NewScriptedPrompter(PromptStep{Kind: "input", Answer: "bad", SkipValidate: true})
	validate := func(string) error { return fmt.Errorf("nope") }

	got, err := p.Input(prompt.InputSpec{Message: "Value", Validate: validate})

	require.NoError(t, err)
	assert.Equal(t, "bad", got)
}

func TestScriptedPrompter_Abort(t *testing.T) {
	p := NewScriptedPrompter(AbortAt("confirm"))

	_, err := p.Confirm(prompt.ConfirmSpec{Message: "Proceed?"})

	assert.ErrorIs(t, err, prompt.ErrAborted)
}

func TestScriptedPrompter_SelectMatchesValueOrLabel(t *testing.T) {
	options := []prompt.Option{
		{Label: "Patch (1.2.4)", Value: "1.2.4"},
		{Label: "Custom", Value: ""},
	}

	t.Run("by value", func(t *testing.T) {
		p := NewScriptedPrompter(SelectAnswer("1.2.4"))
		got, err := p.Select(prompt.SelectSpec{Message: "Next version", Options: options})
		require.NoError(t, err)
		assert.Equal(t, "1.2.4", got)
	})

	t.Run("by label", func(t *testing.T) {
		p := NewScriptedPrompter(SelectAnswer("Custom"))
		got, err := p.Select(prompt.SelectSpec{Message: "Next version", Options: options})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("no such option", func(t *testing.T) {
		p := NewScriptedPrompter(SelectAnswer("9.9.9"))
		_, err := p.Select(prompt.SelectSpec{Message: "Next version", Options: options})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not an option")
	})
}

func TestScriptedPrompter_RecordsTextSeeds(t *testing.T) {
	p := NewScriptedPrompter(TextAnswer("edited"))

	_, err := p.Text(prompt.TextSpec{Message: "Patch notes", Seed: "template"})

	require.NoError(t, err)
	assert.Equal(t, []string{"template"}, p.Seeds)
}

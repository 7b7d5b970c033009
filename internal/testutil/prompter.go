// Package testutil provides test doubles for the interactive and
// external collaborators: a scripted prompter and a mock executor.
package testutil

import (
	"fmt"

	"github.com/calegray/modship/internal/prompt"
)

// PromptStep is one scripted answer for a ScriptedPrompter.
type PromptStep struct {
	// Kind is the expected prompt type: "input", "text", "select", "confirm".
	Kind string
	// Answer is the scripted reply for input/text/select prompts.
	Answer string
	// Yes is the scripted reply for confirm prompts.
	Yes bool
	// Abort simulates the user cancelling this prompt.
	Abort bool
	// SkipValidate bypasses the caller's validate hook, simulating a
	// collaborator that fails to enforce validation.
	SkipValidate bool
}

// Convenience constructors for common steps.

func InputAnswer(s string) PromptStep   { return PromptStep{Kind: "input", Answer: s} }
func TextAnswer(s string) PromptStep    { return PromptStep{Kind: "text", Answer: s} }
func SelectAnswer(s string) PromptStep  { return PromptStep{Kind: "select", Answer: s} }
func ConfirmAnswer(yes bool) PromptStep { return PromptStep{Kind: "confirm", Yes: yes} }
func AbortAt(kind string) PromptStep    { return PromptStep{Kind: kind, Abort: true} }

// ScriptedPrompter replays canned answers in order and records every
// prompt message it receives. Validation hooks run against scripted
// answers: a failing answer consumes the next step of the same kind,
// mirroring the re-ask behavior of a real prompt.
type ScriptedPrompter struct {
	steps []PromptStep
	// Messages records the prompt messages in the order asked.
	Messages []string
	// Seeds records the pre-filled text of every text prompt.
	Seeds []string
}

// NewScriptedPrompter builds a prompter that replays steps in order.
func NewScriptedPrompter(steps ...PromptStep) *ScriptedPrompter {
	return &ScriptedPrompter{steps: steps}
}

// Exhausted reports whether every scripted step was consumed.
func (p *ScriptedPrompter) Exhausted() bool {
	return len(p.steps) == 0
}

func (p *ScriptedPrompter) next(kind, message string) (PromptStep, error) {
	p.Messages = append(p.Messages, message)
	if len(p.steps) == 0 {
		return PromptStep{}, fmt.Errorf("unexpected %s prompt: %q", kind, message)
	}
	step := p.steps[0]
	p.steps = p.steps[1:]
	if step.Kind != kind {
		return PromptStep{}, fmt.Errorf("prompt %q: script expected a %s prompt, got %s", message, step.Kind, kind)
	}
	return step, nil
}

func (p *ScriptedPrompter) Input(spec prompt.InputSpec) (string, error) {
	return p.answerText("input", spec.Message, spec.Validate)
}

func (p *ScriptedPrompter) Text(spec prompt.TextSpec) (string, error) {
	p.Seeds = append(p.Seeds, spec.Seed)
	return p.answerText("text", spec.Message, spec.Validate)
}

func (p *ScriptedPrompter) answerText(kind, message string, validate func(string) error) (string, error) {
	for {
		step, err := p.next(kind, message)
		if err != nil {
			return "", err
		}
		if step.Abort {
			return "", prompt.ErrAborted
		}
		if validate != nil && !step.SkipValidate {
			if verr := validate(step.Answer); verr != nil {
				// Re-ask with the next scripted step, as a real
				// prompt would re-ask the user.
				if len(p.steps) > 0 && p.steps[0].Kind == kind {
					continue
				}
				return "", fmt.Errorf("scripted %s answer %q failed validation: %v", kind, step.Answer, verr)
			}
		}
		return step.Answer, nil
	}
}

func (p *ScriptedPrompter) Select(spec prompt.SelectSpec) (string, error) {
	step, err := p.next("select", spec.Message)
	if err != nil {
		return "", err
	}
	if step.Abort {
		return "", prompt.ErrAborted
	}
	for _, o := range spec.Options {
		if o.Value == step.Answer || o.Label == step.Answer {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("scripted select answer %q is not an option of %q", step.Answer, spec.Message)
}

func (p *ScriptedPrompter) Confirm(spec prompt.ConfirmSpec) (bool, error) {
	step, err := p.next("confirm", spec.Message)
	if err != nil {
		return false, err
	}
	if step.Abort {
		return false, prompt.ErrAborted
	}
	return step.Yes, nil
}

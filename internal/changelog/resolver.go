package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/calegray/modship/internal/prompt"
)

// InvalidEntryError is returned when freshly authored changelog text
// still fails the entry grammar after elicitation. Callers must treat
// this as a hard stop: no entry satisfies the contract.
type InvalidEntryError struct {
	Version string
	Cause   error
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("authored changelog text for %s does not match the entry format: %v", e.Version, e.Cause)
}

func (e *InvalidEntryError) Unwrap() error {
	return e.Cause
}

// Resolver guarantees the caller ends up holding one grammar-valid entry
// for the target version, locating it in the document or eliciting it
// through prompts.
type Resolver struct {
	prompter prompt.Prompter
	now      func() time.Time
}

// NewResolver returns a Resolver asking through p.
func NewResolver(p prompt.Prompter) *Resolver {
	return &Resolver{prompter: p, now: time.Now}
}

// NewResolverWithClock is NewResolver with an explicit clock for stamping
// freshly authored entries. A nil now falls back to time.Now.
func NewResolverWithClock(p prompt.Prompter, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{prompter: p, now: now}
}

// ResolvePatchNotes finds or elicits the changelog entry for version and
// returns it once the user has confirmed it. The sequence is:
//
//  1. Scan the document for an entry matching version.
//  2. If absent, elicit a fresh entry (template pre-filled with the
//     current date) and re-match; text that still fails the grammar is
//     an InvalidEntryError, never a silent nil.
//  3. Show the entry for confirmation. On rejection, offer an edit
//     seeded with the entry's raw text and re-match; declining the edit
//     aborts.
func (r *Resolver) ResolvePatchNotes(doc, version string) (*Entry, error) {
	entry, err := Find(doc, version)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		entry, err = r.elicit(version, "")
		if err != nil {
			return nil, err
		}
	}

	for {
		ok, err := r.prompter.Confirm(prompt.ConfirmSpec{
			Message: fmt.Sprintf("Are the patch notes for %s correct?\n\n%s", version, entry.Raw),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			return entry, nil
		}

		edit, err := r.prompter.Confirm(prompt.ConfirmSpec{
			Message: "Edit the patch notes?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !edit {
			return nil, prompt.ErrAborted
		}

		entry, err = r.elicit(version, entry.Raw)
		if err != nil {
			return nil, err
		}
	}
}

// elicit runs one EditPatchNotes round and re-matches the result.
func (r *Resolver) elicit(version, seed string) (*Entry, error) {
	text, err := r.EditPatchNotes(version, seed)
	if err != nil {
		return nil, err
	}
	entry, err := Find(text, version)
	if err != nil {
		return nil, &InvalidEntryError{Version: version, Cause: err}
	}
	return entry, nil
}

// EditPatchNotes prompts for free-text entry content. When seed is empty
// the prompt is pre-populated with the entry template for version, dated
// today. Grammar validation runs in the prompt's validate hook, so the
// returned text normally matches; the trimmed text is returned either way.
func (r *Resolver) EditPatchNotes(version, seed string) (string, error) {
	if seed == "" {
		seed = Template(version, r.now())
	}

	text, err := r.prompter.Text(prompt.TextSpec{
		Message: fmt.Sprintf("Patch notes for %s", version),
		Seed:    seed,
		Validate: func(s string) error {
			entries, problems := Scan(s)
			for _, e := range entries {
				if e.Version == version {
					return nil
				}
			}
			if len(problems) > 0 {
				return fmt.Errorf("entry does not match the changelog format: %s", problems[0].Kind)
			}
			return fmt.Errorf("no entry for version %s in the text", version)
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

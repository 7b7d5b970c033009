package changelog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegray/modship/internal/prompt"
	"github.com/calegray/modship/internal/testutil"
)

func fixedResolver(p prompt.Prompter) *Resolver {
	r := NewResolver(p)
	r.now = func() time.Time {
		return time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)
	}
	return r
}

func TestResolvePatchNotes_FoundAndConfirmed(t *testing.T) {
	doc := entryText("1.2.3", "14.3.2025", "Fixed the thing")
	prompter := testutil.NewScriptedPrompter(
		testutil.ConfirmAnswer(true),
	)

	entry, err := fixedResolver(prompter).ResolvePatchNotes(doc, "1.2.3")

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", entry.Version)
	assert.True(t, prompter.Exhausted())
}

func TestResolvePatchNotes_NotFoundElicitsEntry(t *testing.T) {
	// Entry for 2.0.0 exists but the target is 2.0.1: the resolver must
	// report not-found and elicit a fresh entry.
	doc := entryText("2.0.0", "1.1.2026", "Old release")
	authored := entryText("2.0.1", "23.8.2026", "Hotfix for the thing")
	prompter := testutil.NewScriptedPrompter(
		testutil.TextAnswer(authored),
		testutil.ConfirmAnswer(true),
	)

	entry, err := fixedResolver(prompter).ResolvePatchNotes(doc, "2.0.1")

	require.NoError(t, err)
	assert.Equal(t, "2.0.1", entry.Version)
	assert.Equal(t, []string{"Hotfix for the thing"}, entry.Body)
	require.NotEmpty(t, prompter.Messages)
	assert.Contains(t, prompter.Messages[0], "Patch notes for 2.0.1")
}

func TestResolvePatchNotes_RejectThenEdit(t *testing.T) {
	doc := entryText("1.0.0", "1.1.2025", "Furst release")
	edited := entryText("1.0.0", "1.1.2025", "First release")
	prompter := testutil.NewScriptedPrompter(
		testutil.ConfirmAnswer(false), // notes not correct
		testutil.ConfirmAnswer(true),  // edit them
		testutil.TextAnswer(edited),
		testutil.ConfirmAnswer(true), // now correct
	)

	entry, err := fixedResolver(prompter).ResolvePatchNotes(doc, "1.0.0")

	require.NoError(t, err)
	assert.Equal(t, []string{"First release"}, entry.Body)
	assert.True(t, prompter.Exhausted())
	// The edit prompt is seeded with the rejected entry's text.
	require.Len(t, prompter.Seeds, 1)
	assert.Contains(t, prompter.Seeds[0], "Furst release")
}

func TestResolvePatchNotes_DecliningEditAborts(t *testing.T) {
	doc := entryText("1.0.0", "1.1.2025", "Notes")
	prompter := testutil.NewScriptedPrompter(
		testutil.ConfirmAnswer(false), // notes not correct
		testutil.ConfirmAnswer(false), // and no edit either
	)

	_, err := fixedResolver(prompter).ResolvePatchNotes(doc, "1.0.0")

	assert.ErrorIs(t, err, prompt.ErrAborted)
}

func TestResolvePatchNotes_CancellationAborts(t *testing.T) {
	tests := map[string][]testutil.PromptStep{
		"cancel at confirmation": {
			testutil.AbortAt("confirm"),
		},
		"cancel while authoring": {
			testutil.AbortAt("text"),
		},
	}

	for name, steps := range tests {
		t.Run(name, func(t *testing.T) {
			doc := ""
			if name == "cancel at confirmation" {
				doc = entryText("1.0.0", "1.1.2025", "Notes")
			}
			prompter := testutil.NewScriptedPrompter(steps...)

			_, err := fixedResolver(prompter).ResolvePatchNotes(doc, "1.0.0")

			assert.ErrorIs(t, err, prompt.ErrAborted)
		})
	}
}

func TestResolvePatchNotes_UnparseableElicitedTextIsTypedError(t *testing.T) {
	// A collaborator that skips validation can hand back text that still
	// fails the grammar; that must surface as InvalidEntryError, never a
	// nil entry.
	prompter := testutil.NewScriptedPrompter(
		testutil.PromptStep{Kind: "text", Answer: "not an entry at all", SkipValidate: true},
	)

	entry, err := fixedResolver(prompter).ResolvePatchNotes("", "1.0.0")

	assert.Nil(t, entry)
	var invalid *InvalidEntryError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "1.0.0", invalid.Version)
}

func TestEditPatchNotes_SeedsTemplateWithCurrentDate(t *testing.T) {
	prompter := testutil.NewScriptedPrompter(
		testutil.TextAnswer(entryText("3.0.0", "23.8.2026", "Notes")),
	)
	r := fixedResolver(prompter)

	_, err := r.EditPatchNotes("3.0.0", "")
	require.NoError(t, err)

	require.Len(t, prompter.Seeds, 1)
	entry, err := Parse(strings.TrimSpace(prompter.Seeds[0]))
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", entry.Version)
	assert.Equal(t, Date{Day: 23, Month: 8, Year: 2026}, entry.Date)
}

func TestEditPatchNotes_TrimsResult(t *testing.T) {
	padded := "\n\n" + entryText("1.0.0", "1.1.2025", "Notes") + "\n\n"
	prompter := testutil.NewScriptedPrompter(
		testutil.TextAnswer(padded),
	)

	text, err := fixedResolver(prompter).EditPatchNotes("1.0.0", "ignored seed")

	require.NoError(t, err)
	assert.Equal(t, entryText("1.0.0", "1.1.2025", "Notes"), text)
}

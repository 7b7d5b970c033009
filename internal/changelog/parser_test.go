package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryText(version, date string, body ...string) string {
	lines := append([]string{Separator, "Version: " + version, "Date: " + date}, body...)
	return strings.Join(lines, "\n") + "\n\""
}

func TestParse_ValidEntries(t *testing.T) {
	tests := map[string]struct {
		text        string
		wantVersion string
		wantDate    Date
		wantBody    []string
	}{
		"single body line": {
			text:        entryText("1.2.3", "14.3.2025", "Fixed the thing"),
			wantVersion: "1.2.3",
			wantDate:    Date{Day: 14, Month: 3, Year: 2025},
			wantBody:    []string{"Fixed the thing"},
		},
		"multiple body lines": {
			text:        entryText("2.0.0", "1.1.2026", "Big rewrite", "Breaking changes everywhere"),
			wantVersion: "2.0.0",
			wantDate:    Date{Day: 1, Month: 1, Year: 2026},
			wantBody:    []string{"Big rewrite", "Breaking changes everywhere"},
		},
		"slash date separators": {
			text:        entryText("1.0.0", "14/3/2025", "Notes"),
			wantVersion: "1.0.0",
			wantDate:    Date{Day: 14, Month: 3, Year: 2025},
			wantBody:    []string{"Notes"},
		},
		"dash date separators": {
			text:        entryText("1.0.0", "14-3-2025", "Notes"),
			wantVersion: "1.0.0",
			wantDate:    Date{Day: 14, Month: 3, Year: 2025},
			wantBody:    []string{"Notes"},
		},
		"zero day and month placeholders": {
			text:        entryText("0.0.1", "0.0.2025", "Notes"),
			wantVersion: "0.0.1",
			wantDate:    Date{Day: 0, Month: 0, Year: 2025},
			wantBody:    []string{"Notes"},
		},
		"leading zero day": {
			text:        entryText("1.0.0", "04.03.2025", "Notes"),
			wantVersion: "1.0.0",
			wantDate:    Date{Day: 4, Month: 3, Year: 2025},
			wantBody:    []string{"Notes"},
		},
		"empty body line counts as body": {
			text:        entryText("1.0.0", "1.1.2025", ""),
			wantVersion: "1.0.0",
			wantDate:    Date{Day: 1, Month: 1, Year: 2025},
			wantBody:    []string{""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			entry, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, entry.Version)
			assert.Equal(t, tt.wantDate, entry.Date)
			assert.Equal(t, tt.wantBody, entry.Body)
		})
	}
}

func TestParse_ErrorKinds(t *testing.T) {
	tests := map[string]struct {
		text     string
		wantKind ErrorKind
	}{
		"98 dashes": {
			text:     strings.Repeat("-", 98) + "\nVersion: 1.2.3\nDate: 1.1.2025\nNotes\n\"",
			wantKind: KindMissingSeparator,
		},
		"100 dashes": {
			text:     strings.Repeat("-", 100) + "\nVersion: 1.2.3\nDate: 1.1.2025\nNotes\n\"",
			wantKind: KindMissingSeparator,
		},
		"multi-digit version component": {
			text:     Separator + "\nVersion: 1.10.0\nDate: 1.1.2025\nNotes\n\"",
			wantKind: KindBadVersionHeader,
		},
		"missing version header": {
			text:     Separator + "\nDate: 1.1.2025\nNotes\n\"",
			wantKind: KindBadVersionHeader,
		},
		"day out of range": {
			text:     Separator + "\nVersion: 1.2.3\nDate: 32.1.2025\nNotes\n\"",
			wantKind: KindBadDateHeader,
		},
		"month out of range": {
			text:     Separator + "\nVersion: 1.2.3\nDate: 1.13.2025\nNotes\n\"",
			wantKind: KindBadDateHeader,
		},
		"malformed date": {
			text:     Separator + "\nVersion: 1.2.3\nDate: yesterday\nNotes\n\"",
			wantKind: KindBadDateHeader,
		},
		"terminator directly after date": {
			text:     Separator + "\nVersion: 1.2.3\nDate: 1.1.2025\n\"",
			wantKind: KindEmptyBody,
		},
		"no terminator before end of input": {
			text:     Separator + "\nVersion: 1.2.3\nDate: 1.1.2025\nNotes",
			wantKind: KindMissingTerminator,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantKind, pe.Kind, "got: %v", pe)
		})
	}
}

func TestParse_RawIsNormalized(t *testing.T) {
	// An entry terminated by the next separator re-renders with a
	// closing quote, so Raw always parses standalone.
	doc := strings.Join([]string{
		Separator,
		"Version: 2.0.0",
		"Date: 1/1/2026",
		"Big rewrite",
		Separator,
		"Version: 1.9.9",
		"Date: 30.12.2025",
		"Old stuff",
		`"`,
	}, "\n")

	entries, problems := Scan(doc)
	require.Empty(t, problems)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.True(t, strings.HasSuffix(first.Raw, `"`))

	reparsed, err := Parse(first.Raw)
	require.NoError(t, err)
	assert.Equal(t, first.Version, reparsed.Version)
	assert.Equal(t, first.Date, reparsed.Date)
	assert.Equal(t, first.Body, reparsed.Body)
	// Date canonicalizes to dotted form.
	assert.Contains(t, first.Raw, "Date: 1.1.2026")
}

func TestScan_SkipsMalformedBlocks(t *testing.T) {
	doc := strings.Join([]string{
		"Some prose before any entry.",
		Separator,
		"Version: 1.10.0", // multi-digit, malformed
		"Date: 1.1.2025",
		"Notes",
		`"`,
		Separator,
		"Version: 1.2.3",
		"Date: 1.1.2025",
		"Valid notes",
		`"`,
	}, "\n")

	entries, problems := Scan(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "1.2.3", entries[0].Version)
	require.Len(t, problems, 1)
	assert.Equal(t, KindBadVersionHeader, problems[0].Kind)
}

func TestFind(t *testing.T) {
	doc := entryText("2.0.0", "1.1.2026", "Big rewrite") + "\n" +
		entryText("1.9.9", "30.12.2025", "Old stuff")

	t.Run("finds entry by version", func(t *testing.T) {
		entry, err := Find(doc, "1.9.9")
		require.NoError(t, err)
		assert.Equal(t, "1.9.9", entry.Version)
		assert.Equal(t, []string{"Old stuff"}, entry.Body)
	})

	t.Run("reports not found with available versions", func(t *testing.T) {
		_, err := Find(doc, "2.0.1")
		require.Error(t, err)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "2.0.1", notFound.Version)
		assert.Equal(t, []string{"2.0.0", "1.9.9"}, notFound.Available)
		assert.True(t, IsNotFound(err))
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Find("", "1.0.0")
		assert.True(t, IsNotFound(err))
	})
}

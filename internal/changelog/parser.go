package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrorKind distinguishes the ways an entry can fail to parse.
type ErrorKind int

const (
	// KindMissingSeparator means the entry does not open with the
	// 99-dash line.
	KindMissingSeparator ErrorKind = iota
	// KindBadVersionHeader means the Version header is absent or does
	// not match "Version: X.Y.Z" with single-digit components.
	KindBadVersionHeader
	// KindBadDateHeader means the Date header is absent, malformed, or
	// out of range (day > 31, month > 12).
	KindBadDateHeader
	// KindEmptyBody means the terminator follows the Date header with
	// no body lines in between.
	KindEmptyBody
	// KindMissingTerminator means the entry runs to end of input with
	// no closing quote or next separator.
	KindMissingTerminator
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingSeparator:
		return "missing separator"
	case KindBadVersionHeader:
		return "bad version header"
	case KindBadDateHeader:
		return "bad date header"
	case KindEmptyBody:
		return "empty body"
	case KindMissingTerminator:
		return "missing terminator"
	default:
		return "invalid entry"
	}
}

// ParseError reports a structural problem with an entry.
type ParseError struct {
	Kind    ErrorKind
	Line    int // 1-based line number in the parsed input
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

// NotFoundError is returned when no entry in a document matches the
// requested version.
type NotFoundError struct {
	Version   string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no changelog entry for version %q", e.Version)
	}
	return fmt.Sprintf("no changelog entry for version %q (found: %s)",
		e.Version, strings.Join(e.Available, ", "))
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

var (
	// Single-digit components only. The matching grammar is
	// intentionally looser than full semver; "Version: 1.10.0" is not
	// an entry header.
	versionHeaderPattern = regexp.MustCompile(`^Version: (\d)\.(\d)\.(\d)$`)

	// Day and month take 1-2 digits with '.', '/', or '-' separators.
	dateHeaderPattern = regexp.MustCompile(`^Date: (\d{1,2})[./-](\d{1,2})[./-](\d{1,4})$`)
)

// Parse reads a single entry from the start of text.
func Parse(text string) (*Entry, error) {
	lines := splitLines(text)
	entry, _, err := parseAt(lines, 0)
	return entry, err
}

// Scan extracts every well-formed entry from a document. Blocks that open
// with a separator but fail the grammar are reported as diagnostics and
// skipped; text outside entries is ignored.
func Scan(doc string) ([]*Entry, []*ParseError) {
	lines := splitLines(doc)

	var entries []*Entry
	var problems []*ParseError

	i := 0
	for i < len(lines) {
		if lines[i] != Separator {
			i++
			continue
		}
		entry, next, err := parseAt(lines, i)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				problems = append(problems, pe)
			}
			// Resync at the next separator.
			i++
			continue
		}
		entries = append(entries, entry)
		i = next
	}

	return entries, problems
}

// Find returns the first entry in doc whose version equals version.
// Returns NotFoundError listing the versions that were present.
func Find(doc, version string) (*Entry, error) {
	entries, _ := Scan(doc)

	available := make([]string, len(entries))
	for i, e := range entries {
		available[i] = e.Version
	}

	for _, e := range entries {
		if e.Version == version {
			return e, nil
		}
	}

	return nil, &NotFoundError{Version: version, Available: available}
}

// parseAt parses the entry whose separator is expected at lines[start].
// On success it returns the entry and the index of the first line after
// it (the terminating separator itself is not consumed, so back-to-back
// entries parse naturally).
func parseAt(lines []string, start int) (*Entry, int, error) {
	i := start
	if i >= len(lines) || lines[i] != Separator {
		return nil, start, &ParseError{
			Kind:    KindMissingSeparator,
			Line:    i + 1,
			Message: fmt.Sprintf("expected a line of exactly %d dashes", SeparatorWidth),
		}
	}
	i++

	if i >= len(lines) {
		return nil, start, &ParseError{
			Kind:    KindBadVersionHeader,
			Line:    i + 1,
			Message: `missing "Version: X.Y.Z" header`,
		}
	}
	vm := versionHeaderPattern.FindStringSubmatch(lines[i])
	if vm == nil {
		return nil, start, &ParseError{
			Kind:    KindBadVersionHeader,
			Line:    i + 1,
			Message: fmt.Sprintf("malformed version header %q", lines[i]),
		}
	}
	version := vm[1] + "." + vm[2] + "." + vm[3]
	i++

	if i >= len(lines) {
		return nil, start, &ParseError{
			Kind:    KindBadDateHeader,
			Line:    i + 1,
			Message: `missing "Date: D.M.Y" header`,
		}
	}
	dm := dateHeaderPattern.FindStringSubmatch(lines[i])
	if dm == nil {
		return nil, start, &ParseError{
			Kind:    KindBadDateHeader,
			Line:    i + 1,
			Message: fmt.Sprintf("malformed date header %q", lines[i]),
		}
	}
	day, _ := strconv.Atoi(dm[1])
	month, _ := strconv.Atoi(dm[2])
	year, _ := strconv.Atoi(dm[3])
	if day > 31 || month > 12 {
		return nil, start, &ParseError{
			Kind:    KindBadDateHeader,
			Line:    i + 1,
			Message: fmt.Sprintf("date %s.%s.%s out of range", dm[1], dm[2], dm[3]),
		}
	}
	i++

	var body []string
	terminated := false
	for i < len(lines) {
		line := lines[i]
		if line == Separator {
			terminated = true
			break
		}
		if strings.HasPrefix(line, `"`) {
			terminated = true
			i++
			break
		}
		body = append(body, line)
		i++
	}
	if !terminated {
		return nil, start, &ParseError{
			Kind:    KindMissingTerminator,
			Line:    i,
			Message: "entry has no closing quote or following separator",
		}
	}
	if len(body) == 0 {
		return nil, start, &ParseError{
			Kind:    KindEmptyBody,
			Line:    i,
			Message: "entry has no body lines",
		}
	}

	entry := &Entry{
		Version: version,
		Date:    Date{Day: day, Month: month, Year: year},
		Body:    body,
		Raw:     render(version, Date{Day: day, Month: month, Year: year}, body),
	}
	return entry, i, nil
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

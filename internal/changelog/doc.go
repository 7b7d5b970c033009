// Package changelog parses, renders, and resolves the delimited entry
// format used by mod changelogs: a 99-dash separator line, a Version
// header, a Date header, free-form body lines, and a closing quote.
//
// Parsing is an explicit line-oriented parser rather than one regular
// expression, so malformed entries produce distinguishable error kinds
// (bad separator, bad version header, bad date, missing terminator)
// instead of a silent non-match.
package changelog

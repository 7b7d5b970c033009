package changelog

import (
	"fmt"
	"strings"
)

// SeparatorWidth is the exact width of the dash line that opens an entry.
// The format is fixed at 99 characters; 98 or 100 dashes do not match.
const SeparatorWidth = 99

// Separator is the dash line that opens every entry.
var Separator = strings.Repeat("-", SeparatorWidth)

// Date is the day/month/year stamp from an entry header. Day may be 0-31
// and month 0-12; the format historically allowed zero placeholders.
type Date struct {
	Day   int
	Month int
	Year  int
}

// String renders the date in the canonical dotted form used by the
// entry template.
func (d Date) String() string {
	return fmt.Sprintf("%d.%d.%d", d.Day, d.Month, d.Year)
}

// Entry is one structurally valid changelog block.
type Entry struct {
	// Version is the X.Y.Z value from the Version header. The entry
	// grammar only admits single-digit components.
	Version string
	// Date is the parsed Date header.
	Date Date
	// Body holds the free-form note lines between the Date header and
	// the terminator.
	Body []string
	// Raw is the entry re-rendered in normalized form: separator,
	// headers, body, closing quote. Raw always re-parses cleanly, which
	// makes it safe to seed an edit prompt with.
	Raw string
}

// render produces the normalized text for an entry.
func render(version string, date Date, body []string) string {
	var sb strings.Builder
	sb.WriteString(Separator)
	sb.WriteString("\nVersion: ")
	sb.WriteString(version)
	sb.WriteString("\nDate: ")
	sb.WriteString(date.String())
	sb.WriteString("\n")
	for _, line := range body {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(`"`)
	return sb.String()
}

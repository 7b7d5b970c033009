package changelog

import "time"

// Template returns a pre-filled entry block for version, dated at now.
// The block parses under the entry grammar as-is, with a single empty
// body line for the author to replace.
func Template(version string, now time.Time) string {
	date := Date{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
	return render(version, date, []string{""})
}

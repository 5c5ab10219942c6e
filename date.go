package jsexp

import (
	"fmt"
	"time"
)

// DefaultDateLayouts is the ordered list of layouts tried when a date field
// is encoded. The first layout that parses the full text wins, so for the
// ambiguous two-digit slash form day-first beats month-first. Override per
// call with WithDateLayouts.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
}

// parseDate tries each layout in order and reports whether any of them
// accepted the full text.
func parseDate(text string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// encodeDate renders the make-date form: month and day zero-padded to two
// digits, year unpadded.
func encodeDate(t time.Time) string {
	return fmt.Sprintf("(make-date %d %02d %02d)", t.Year(), int(t.Month()), t.Day())
}

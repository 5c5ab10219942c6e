package jsexp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// partNumberRE matches identifier-like strings following the part-number
// convention: one uppercase ASCII letter followed by digits.
var partNumberRE = regexp.MustCompile(`^[A-Z][0-9]+$`)

// encodeString emits s as a quoted symbol when it looks like a part number
// ('A4786, no surrounding quotes), otherwise as a double-quoted literal with
// backslash and double-quote characters backslash-escaped. No other
// characters are altered.
func encodeString(s string) string {
	if partNumberRE.MatchString(s) {
		return "'" + s
	}
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func encodeBool(b bool) string {
	if b {
		return "#t"
	}
	return "#f"
}

// encodeFloat keeps the shortest decimal text that round-trips, so 4.0
// prints as 4 and 1.47 prints as 1.47.
func encodeFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// encodeOpaque stringifies values outside the closed variant set. The text
// is wrapped in plain double quotes with no escaping; it is reachable only
// when the opaque fallback is enabled.
func encodeOpaque(v any) string {
	return `"` + fmt.Sprint(v) + `"`
}

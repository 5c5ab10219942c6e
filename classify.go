package jsexp

import (
	"regexp"
	"strings"
)

// dateFieldNames are the field names that mark a string value as a date,
// compared case-insensitively.
var dateFieldNames = map[string]bool{
	"date":      true,
	"timestamp": true,
	"created":   true,
	"updated":   true,
	"time":      true,
	"when":      true,
}

// datePrefixREs match strings that begin with a date-shaped prefix. A
// matching prefix is enough; trailing content is ignored at classification
// time and only rejected later, when the full text fails to parse.
var datePrefixREs = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`), // YYYY-MM-DD
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`), // DD/MM/YYYY or MM/DD/YYYY
	regexp.MustCompile(`^\d{4}/\d{2}/\d{2}`), // YYYY/MM/DD
}

// isDateField reports whether the (name, value) pair should be encoded as a
// date form. Only string values qualify.
func isDateField(name string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if dateFieldNames[strings.ToLower(name)] {
		return true
	}
	for _, re := range datePrefixREs {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// isItemsField reports whether the pair is an "items" collection whose
// elements are wrapped individually as prefix:item forms.
func isItemsField(name string, value any) bool {
	_, ok := value.(A)
	return ok && name == "items"
}

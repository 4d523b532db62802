package structs

import (
	"strings"
	"time"
)

// Layouts accepted for timestamp cells beyond RFC 3339. Hand-edited
// sheets drift between offset-carrying and naive forms.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a timestamp cell. Naive values are interpreted in
// loc. The second result is false when s is blank or unparseable.
func ParseTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders t as RFC 3339 in loc, the storage format for every
// timestamp column.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC3339)
}

// NormalizeDueAt converts due-date input into the stored timestamp
// form. A bare date becomes 23:59 local time on that day, so a todo
// stays "due today" until the day ends. Unparseable input normalizes to
// empty, matching the permissive handling of hand-entered values.
func NormalizeDueAt(s string, loc *time.Location) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) == len("2006-01-02") {
		d, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return ""
		}
		return FormatTime(time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, loc), loc)
	}
	if t, ok := ParseTime(s, loc); ok {
		return FormatTime(t, loc)
	}
	return ""
}

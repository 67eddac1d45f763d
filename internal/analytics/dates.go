package analytics

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
// The string must match the pattern, parse as midnight UTC, and format back
// to exactly the same text, which rejects dates like 2023-02-30.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return false
	}
	return t.UTC().Format(dateLayout) == s
}

// Interval is the bucket width of a trend query.
type Interval string

const (
	IntervalDay   Interval = "DAY"
	IntervalWeek  Interval = "WEEK"
	IntervalMonth Interval = "MONTH"
)

// Valid reports whether i is one of the supported intervals (case-sensitive).
func (i Interval) Valid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth:
		return true
	}
	return false
}

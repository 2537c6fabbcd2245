package types

import (
	"regexp"
	"time"
)

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// ParseTime parses either an RFC3339 timestamp or a "YYYY-MM-DD" full date.
//
// Full dates are interpreted as midnight in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if IsFullDate(s) {
		return time.ParseInLocation(time.DateOnly, s, loc)
	}

	return time.Parse(time.RFC3339, s)
}

// EndOfDay returns the last instant of the day t is in.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// IsFullDate reports whether s is a date in the format YYYY-MM-DD.
func IsFullDate(s string) bool {
	return fullDate.MatchString(s)
}

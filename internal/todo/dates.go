package todo

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted due date format.
const DateLayout = "2006-01-02"

const displayLayout = "Jan 2, 2006"

// ParseDueDate normalizes a user-entered due date. Empty input is a valid
// "no due date".
func ParseDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("due date %q is not YYYY-MM-DD", s)
	}
	return d.Format(DateLayout), nil
}

// FormatForDisplay renders a due date as "Jan 2, 2006". Values that are not
// calendar dates come back unchanged.
func FormatForDisplay(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(displayLayout)
}

// IsOverdue reports whether date falls on a calendar day before now's,
// both read in now's location.
func IsOverdue(date string, now time.Time) bool {
	date = strings.TrimSpace(date)
	if date == "" {
		return false
	}
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, now.Location()))
}

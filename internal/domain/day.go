package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayLayout     = "2006-01-02"
	displayLayout = "Mon Jan 02 2006"
)

// Day is a calendar date without a time of day, held as UTC midnight.
// The zero value means "no date".
type Day struct {
	t time.Time
}

// NewDay returns the calendar day of t in t's own location.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses "2006-01-02" or an RFC 3339 timestamp. Anything else
// is rejected with ErrInvalidInput.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dayLayout, s); err == nil {
		return NewDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDay(t), nil
	}
	return Day{}, fmt.Errorf("%w: %q is not a valid date", ErrInvalidInput, s)
}

// IsZero reports whether d is unset.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the day as UTC midnight.
func (d Day) Time() time.Time {
	return d.t
}

// String formats the day as "2006-01-02", the form used for storage.
func (d Day) String() string {
	return d.t.Format(dayLayout)
}

// Display formats the day for API responses, e.g. "Sun Jan 15 2023".
func (d Day) Display() string {
	return d.t.Format(displayLayout)
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for event dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for event times of day.
	ClockLayout = "15:04"
)

// ParseDate parses a calendar date in the fixed wire format.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date value is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", value)
	}
	return t, nil
}

// Clock is a time of day without a date attached.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour HH:MM time of day.
func ParseClock(value string) (Clock, error) {
	if value == "" {
		return Clock{}, fmt.Errorf("time value is required")
	}
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return Clock{}, fmt.Errorf("unable to parse time: %s", value)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the clock as minutes past midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String renders the clock back in the 24-hour wire format.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Format12 renders the clock in 12-hour form, e.g. "09:00 AM".
func (c Clock) Format12() string {
	suffix := "AM"
	hour := c.Hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, c.Minute, suffix)
}

// FormatLongDate renders a date as "August 12, 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatMonthDay renders a date as "August 12".
func FormatMonthDay(t time.Time) string {
	return t.Format("January 2")
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

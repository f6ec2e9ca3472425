// Package event holds the structured event model extracted from
// free-form user text, plus input sanitization and validation of the
// remote extraction response.
package event

import (
	"errors"
	"strings"
	"time"

	"focal/internal/timeutil"
)

// ErrInputTooShort is returned for requests below the minimum length.
var ErrInputTooShort = errors.New("event description too short")

const (
	// MaxInputLen is the cap on raw request text, applied before any
	// other processing.
	MaxInputLen = 500
	// MinInputLen is the shortest request worth interpreting.
	MinInputLen = 3
)

// Recurrence values accepted from the extraction response.
const (
	RecurDaily   = "daily"
	RecurWeekly  = "weekly"
	RecurMonthly = "monthly"
	RecurYearly  = "yearly"
)

// Event is a validated calendar event. An event is either all-day
// (both clock times nil) or timed (both present); the validator
// enforces this before an Event is ever constructed.
type Event struct {
	Title      string
	StartDate  time.Time
	EndDate    time.Time
	AllDay     bool
	StartTime  *timeutil.Clock
	EndTime    *timeutil.Clock
	Location   string
	Notes      string
	Recurrence string
}

// SameDay reports whether the event starts and ends on one calendar day.
func (e *Event) SameDay() bool {
	return timeutil.SameDay(e.StartDate, e.EndDate)
}

// OneHour reports whether a timed, same-day event lasts exactly one hour.
func (e *Event) OneHour() bool {
	if e.AllDay || e.StartTime == nil || e.EndTime == nil || !e.SameDay() {
		return false
	}
	return e.EndTime.Minutes()-e.StartTime.Minutes() == 60
}

// Sanitize truncates raw request text and strips characters that would
// break an AppleScript string literal. Runs before all other
// processing; the result is what every downstream component sees.
func Sanitize(text string) string {
	runes := []rune(text)
	if len(runes) > MaxInputLen {
		text = string(runes[:MaxInputLen])
	}
	text = strings.ReplaceAll(text, `\`, "")
	text = strings.ReplaceAll(text, `"`, "'")
	return strings.TrimSpace(text)
}

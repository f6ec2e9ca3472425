package render

import (
	"fmt"
	"strings"
	"time"

	"focal/internal/event"
	"focal/internal/timeutil"
)

// Sentence builds the natural-language sentence Fantastical's own
// parser re-interprets. The calendar selector suffix is appended only
// when a non-default calendar is configured.
func Sentence(ev *event.Event, calendar string) string {
	var b strings.Builder
	b.WriteString(ev.Title)

	if ev.AllDay {
		writeAllDayRange(&b, ev)
	} else {
		writeTimedRange(&b, ev)
	}

	if ev.Location != "" {
		b.WriteString(" at ")
		b.WriteString(ev.Location)
	}
	if ev.Recurrence != "" {
		b.WriteString(" repeating ")
		b.WriteString(ev.Recurrence)
	}
	if calendar != "" {
		b.WriteString(" /")
		b.WriteString(calendar)
	}

	return b.String()
}

func writeAllDayRange(b *strings.Builder, ev *event.Event) {
	switch {
	case ev.SameDay():
		fmt.Fprintf(b, " on %s", timeutil.FormatLongDate(ev.StartDate))
	case sameMonth(ev.StartDate, ev.EndDate):
		fmt.Fprintf(b, " from %s to %d, %d",
			timeutil.FormatMonthDay(ev.StartDate), ev.EndDate.Day(), ev.EndDate.Year())
	default:
		fmt.Fprintf(b, " from %s to %s",
			timeutil.FormatMonthDay(ev.StartDate), timeutil.FormatLongDate(ev.EndDate))
	}
}

func writeTimedRange(b *strings.Builder, ev *event.Event) {
	fmt.Fprintf(b, " on %s at %s", timeutil.FormatLongDate(ev.StartDate), ev.StartTime.Format12())

	// Same-day one-hour events lean on Fantastical's own default
	// duration and omit the end time entirely.
	if ev.OneHour() {
		return
	}
	if ev.SameDay() {
		fmt.Fprintf(b, " to %s", ev.EndTime.Format12())
		return
	}
	fmt.Fprintf(b, " to %s at %s", timeutil.FormatLongDate(ev.EndDate), ev.EndTime.Format12())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FantasticalScript wraps the sentence and a provenance note into the
// complete automation script.
func FantasticalScript(ev *event.Event, calendar, original string, now time.Time) string {
	sentence := Sentence(ev, calendar)
	notes := ProvenanceNote(original, now)
	return WrapFantastical(sentence, notes)
}

// WrapFantastical produces the "parse sentence" script form. An empty
// notes string omits the notes clause (the fallback path has no
// provenance to attach).
func WrapFantastical(sentence, notes string) string {
	var b strings.Builder
	b.WriteString("tell application \"Fantastical\"\n")
	if notes == "" {
		fmt.Fprintf(&b, "  parse sentence \"%s\" with add immediately\n", EscapeScript(sentence))
	} else {
		fmt.Fprintf(&b, "  parse sentence \"%s\" notes \"%s\" with add immediately\n",
			EscapeScript(sentence), EscapeScript(notes))
	}
	b.WriteString("end tell")
	return b.String()
}

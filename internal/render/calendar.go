package render

import (
	"fmt"
	"strings"
	"time"

	"focal/internal/event"
	"focal/internal/timeutil"
)

// appleScriptMonths maps month numbers to AppleScript's month
// constants.
var appleScriptMonths = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// CalendarScript emits an Apple Calendar automation script that builds
// the start and end dates field by field and issues a single create
// command. All-day events carry no clock component.
func CalendarScript(ev *event.Event, calendar, original string, now time.Time) string {
	var b strings.Builder

	writeDateValue(&b, "startDate", ev.StartDate, ev.StartTime)
	writeDateValue(&b, "endDate", ev.EndDate, ev.EndTime)

	description := ProvenanceNote(original, now)
	if ev.Notes != "" {
		description = ev.Notes + "\n" + description
	}
	if ev.Recurrence != "" {
		description = fmt.Sprintf("Repeats %s.\n%s", ev.Recurrence, description)
	}

	props := fmt.Sprintf("summary:\"%s\", start date:startDate, end date:endDate", EscapeScript(ev.Title))
	if ev.Location != "" {
		props += fmt.Sprintf(", location:\"%s\"", EscapeScript(ev.Location))
	}
	props += fmt.Sprintf(", description:\"%s\"", EscapeScript(description))

	b.WriteString("tell application \"Calendar\"\n")
	if calendar == "" {
		b.WriteString("  tell first calendar\n")
	} else {
		fmt.Fprintf(&b, "  tell calendar \"%s\"\n", EscapeScript(calendar))
	}
	fmt.Fprintf(&b, "    make new event with properties {%s}\n", props)
	b.WriteString("  end tell\n")
	b.WriteString("end tell")

	return b.String()
}

func writeDateValue(b *strings.Builder, name string, date time.Time, clock *timeutil.Clock) {
	fmt.Fprintf(b, "set %s to current date\n", name)
	fmt.Fprintf(b, "set year of %s to %d\n", name, date.Year())
	fmt.Fprintf(b, "set month of %s to %s\n", name, appleScriptMonths[int(date.Month())])
	fmt.Fprintf(b, "set day of %s to %d\n", name, date.Day())

	hour, minute := 0, 0
	if clock != nil {
		hour, minute = clock.Hour, clock.Minute
	}
	fmt.Fprintf(b, "set hours of %s to %d\n", name, hour)
	fmt.Fprintf(b, "set minutes of %s to %d\n", name, minute)
	fmt.Fprintf(b, "set seconds of %s to 0\n", name)
}

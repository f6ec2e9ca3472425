package event

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"focal/internal/timeutil"
)

// ExtractionError describes why a remote extraction response was
// rejected. Callers use it to decide between aborting and falling back
// to the regex parser.
type ExtractionError struct {
	Field  string
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("extraction: %s", e.Reason)
	}
	return fmt.Sprintf("extraction: field %q: %s", e.Field, e.Reason)
}

// ParseResponse validates the raw text returned by the remote service
// and produces an Event. The response is expected to be a single JSON
// object, optionally wrapped in a fenced code block.
func ParseResponse(raw string) (*Event, error) {
	raw = stripFence(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &ExtractionError{Reason: "response is not a JSON object"}
	}

	for _, name := range []string{"title", "start_date", "end_date", "all_day"} {
		if _, ok := fields[name]; !ok {
			return nil, &ExtractionError{Field: name, Reason: "missing"}
		}
	}

	title, err := stringField(fields, "title")
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, &ExtractionError{Field: "title", Reason: "empty"}
	}

	var allDay bool
	if err := json.Unmarshal(fields["all_day"], &allDay); err != nil {
		return nil, &ExtractionError{Field: "all_day", Reason: "not a boolean"}
	}

	startRaw, err := stringField(fields, "start_date")
	if err != nil {
		return nil, err
	}
	startDate, err := timeutil.ParseDate(startRaw)
	if err != nil {
		return nil, &ExtractionError{Field: "start_date", Reason: err.Error()}
	}

	endRaw, err := stringField(fields, "end_date")
	if err != nil {
		return nil, err
	}
	endDate, err := timeutil.ParseDate(endRaw)
	if err != nil {
		return nil, &ExtractionError{Field: "end_date", Reason: err.Error()}
	}

	if endDate.Before(startDate) {
		return nil, &ExtractionError{Field: "end_date", Reason: "before start_date"}
	}

	ev := &Event{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		AllDay:    allDay,
	}

	if allDay {
		// Whatever the model returned for the time fields is discarded;
		// an all-day event carries no clock times.
		if hasValue(fields, "start_time") || hasValue(fields, "end_time") {
			log.Warn().Str("title", title).Msg("dropping clock times on all-day event")
		}
	} else {
		start, err := clockField(fields, "start_time")
		if err != nil {
			return nil, err
		}
		end, err := clockField(fields, "end_time")
		if err != nil {
			return nil, err
		}
		ev.StartTime = start
		ev.EndTime = end
	}

	if ev.Location, err = optionalString(fields, "location"); err != nil {
		return nil, err
	}
	if ev.Notes, err = optionalString(fields, "notes"); err != nil {
		return nil, err
	}
	if ev.Recurrence, err = optionalString(fields, "recurrence"); err != nil {
		return nil, err
	}
	switch ev.Recurrence {
	case "", RecurDaily, RecurWeekly, RecurMonthly, RecurYearly:
	default:
		return nil, &ExtractionError{Field: "recurrence", Reason: fmt.Sprintf("unknown value %q", ev.Recurrence)}
	}

	return ev, nil
}

// stripFence removes an enclosing markdown code fence: when the first
// line is a fence marker, the first and last lines are dropped.
func stripFence(raw string) string {
	raw = strings.TrimSpace(raw)
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		return raw
	}
	lines = lines[1:]
	if strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func hasValue(fields map[string]json.RawMessage, name string) bool {
	v, ok := fields[name]
	return ok && string(v) != "null"
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	var s *string
	if err := json.Unmarshal(fields[name], &s); err != nil || s == nil {
		return "", &ExtractionError{Field: name, Reason: "not a string"}
	}
	return strings.TrimSpace(*s), nil
}

func optionalString(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &ExtractionError{Field: name, Reason: "not a string"}
	}
	return strings.TrimSpace(s), nil
}

func clockField(fields map[string]json.RawMessage, name string) (*timeutil.Clock, error) {
	if !hasValue(fields, name) {
		return nil, &ExtractionError{Field: name, Reason: "required for timed events"}
	}
	var s string
	if err := json.Unmarshal(fields[name], &s); err != nil {
		return nil, &ExtractionError{Field: name, Reason: "not a string"}
	}
	c, err := timeutil.ParseClock(s)
	if err != nil {
		return nil, &ExtractionError{Field: name, Reason: err.Error()}
	}
	return &c, nil
}

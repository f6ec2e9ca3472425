package osascript

import (
	"context"
	"strings"
)

const listCalendarsScript = `tell application "Calendar" to get name of calendars`

// ListCalendars asks Apple Calendar for its calendar names. The
// interpreter prints an AppleScript list as comma-separated text.
func (r *Runner) ListCalendars(ctx context.Context) ([]string, error) {
	output, err := r.RunOutput(ctx, listCalendarsScript)
	if err != nil {
		return nil, err
	}
	return parseCalendarList(output), nil
}

func parseCalendarList(output string) []string {
	if output == "" {
		return nil
	}

	var names []string
	for _, part := range strings.Split(output, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

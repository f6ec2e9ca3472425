package openai

import (
	"fmt"
	"strings"
	"time"

	"focal/internal/timeutil"
)

// SystemPrompt instructs the model to return a single fixed-schema JSON
// object describing the event.
const SystemPrompt = `You are an expert at converting natural language into structured calendar events.

Your task is to read one event description and respond with ONLY a JSON object in this exact format:

{
  "title": "Brief, descriptive event title",
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD",
  "all_day": true|false,
  "start_time": "HH:MM in 24-hour format, or null for all-day events",
  "end_time": "HH:MM in 24-hour format, or null for all-day events",
  "location": "Location if mentioned, otherwise null",
  "notes": "Additional context worth keeping, otherwise null",
  "recurrence": "daily"|"weekly"|"monthly"|"yearly"|null
}

## Rules

1. Date ranges and vacation/travel vocabulary ("off", "trip", "holiday", "visiting") mean all_day=true with no times
2. A single day with no explicit time: use the current time as start_time, all_day=false
3. If a start time is given but no end time: end_time is one hour after start_time
4. For relative dates ("tomorrow", "next Tuesday"), use the date context provided - do not compute dates yourself
5. start_date and end_date are the same for single-day events
6. Only set recurrence when the text clearly repeats ("every Monday", "weekly", "monthly")
7. Do not invent locations or notes - use null when not mentioned

Return ONLY the JSON object, no explanation, no markdown fence.`

// BuildUserPrompt assembles the date-aware prompt for one request.
// Pure function of the sanitized text and the sampled wall clock; every
// date the model could need is precomputed here.
func BuildUserPrompt(text string, now time.Time) string {
	var prompt strings.Builder

	prompt.WriteString("## Current Date Context\n\n")
	prompt.WriteString(fmt.Sprintf("- Today is %s\n", now.Format("Monday, January 2, 2006")))
	prompt.WriteString(fmt.Sprintf("- The current time is %s\n", timeutil.Clock{Hour: now.Hour(), Minute: now.Minute()}.String()))
	prompt.WriteString(fmt.Sprintf("- Tomorrow is %s\n", now.AddDate(0, 0, 1).Format("Monday, January 2, 2006")))

	prompt.WriteString("\n## Upcoming Weekdays\n\n")
	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		prompt.WriteString(fmt.Sprintf("- %s is %s\n", day.Format("Monday"), day.Format(timeutil.DateLayout)))
	}

	prompt.WriteString("\n## Request\n\n")
	prompt.WriteString(fmt.Sprintf("%q\n", text))
	prompt.WriteString("\nRespond with only the JSON object.")

	return prompt.String()
}

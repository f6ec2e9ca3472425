// Package fallback is a deterministic regex parser used when the
// remote extraction path is unavailable or its response fails
// validation. Best effort only: whatever the patterns cannot capture
// is left to the calendar app's own parser.
package fallback

import (
	"regexp"
	"strings"

	"focal/internal/render"
)

// Parsed holds whichever event components the patterns captured.
type Parsed struct {
	Title    string
	Date     string
	Time     string
	Location string
}

const (
	dayWords  = `today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	clockExpr = `\d{1,2}(?::\d{2})?\s*(?:am|pm)`
)

// Patterns are tried in order; the first match wins. Matching is
// case-insensitive against the sanitized text so captures keep the
// user's original casing.
var patterns = []*regexp.Regexp{
	// "Meeting tomorrow at 2pm"
	regexp.MustCompile(`(?i)(?P<title>.+?)\s+(?P<date>` + dayWords + `)\s+at\s+(?P<time>` + clockExpr + `)`),

	// "Lunch with Anna at noon tomorrow"
	regexp.MustCompile(`(?i)(?P<title>.+?)\s+at\s+(?P<time>noon|` + clockExpr + `)\s+(?P<date>` + dayWords + `)`),

	// "Meeting next Tuesday at 3pm at Conference Room"
	regexp.MustCompile(`(?i)(?P<title>.+?)\s+(?P<date>next\s+\w+|\w+day)\s+at\s+(?P<time>` + clockExpr + `)\s+at\s+(?P<location>.+)`),

	// "Title at time"
	regexp.MustCompile(`(?i)(?P<title>.+?)\s+at\s+(?P<time>` + clockExpr + `|noon)`),
}

// Parse extracts event components from sanitized text. When no pattern
// matches, the whole text becomes the title.
func Parse(text string) Parsed {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		var p Parsed
		for i, name := range pattern.SubexpNames() {
			value := strings.TrimSpace(match[i])
			switch name {
			case "title":
				p.Title = value
			case "date":
				p.Date = value
			case "time":
				p.Time = value
			case "location":
				p.Location = value
			}
		}
		return p
	}

	return Parsed{Title: strings.TrimSpace(text)}
}

// Sentence concatenates the captured components in fixed order,
// normalizing "noon" to a form the downstream parser accepts.
func (p Parsed) Sentence() string {
	parts := []string{p.Title}

	if p.Date != "" {
		parts = append(parts, "on "+p.Date)
	}
	if p.Time != "" {
		t := p.Time
		if strings.EqualFold(t, "noon") {
			t = "12 pm"
		}
		parts = append(parts, "at "+t)
	}
	if p.Location != "" {
		parts = append(parts, "at "+p.Location)
	}

	return strings.Join(parts, " ")
}

// Script wraps the sentence in the Fantastical script form. No
// provenance note: this path is a last resort.
func (p Parsed) Script() string {
	if p.Title == "" {
		return ""
	}
	return render.WrapFantastical(p.Sentence(), "")
}

// Package render turns a validated event into an AppleScript for one
// of the two supported calendar applications.
package render

import (
	"fmt"
	"strings"
	"time"
)

// App identifies the target calendar application.
type App string

const (
	// AppFantastical uses Fantastical's own sentence parser.
	AppFantastical App = "fantastical"
	// AppCalendar drives Apple Calendar with explicit date components.
	AppCalendar App = "calendar"
)

// EscapeScript escapes a value for use inside an AppleScript string
// literal.
func EscapeScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// ProvenanceNote records that the event was machine-generated, with
// the original request text and the creation time.
func ProvenanceNote(original string, now time.Time) string {
	return fmt.Sprintf("Created by FOCAL on %s from: %s", now.Format("2006-01-02 15:04"), original)
}

// Package alfred renders script filter responses for the launcher UI.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"focal/internal/event"
)

// Icon points at a workflow-relative image shown next to an item.
type Icon struct {
	Path string `json:"path"`
}

// Item is a single row in the script filter result list.
type Item struct {
	UID      string `json:"uid"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Valid    bool   `json:"valid"`
	Icon     Icon   `json:"icon"`
}

// Response is the top-level script filter payload.
type Response struct {
	Items []Item `json:"items"`
}

var defaultIcon = Icon{Path: "icon.png"}

// Filter builds the item list for a partially typed query. Queries
// shorter than the minimum input length get a non-actionable help row;
// anything longer gets an actionable create row plus a preview hint.
func Filter(query string) Response {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < event.MinInputLen {
		return Response{Items: []Item{
			{
				UID:      "help",
				Title:    "Enter your event description...",
				Subtitle: "e.g., 'Lunch with Anna tomorrow at noon' or 'Team meeting next Tuesday at 2pm'",
				Valid:    false,
				Icon:     defaultIcon,
			},
		}}
	}
	return Response{Items: []Item{
		{
			UID:      "create_event",
			Title:    fmt.Sprintf("Create Event: %s", query),
			Subtitle: "Press Enter to create calendar event using AI-powered natural language processing",
			Arg:      query,
			Valid:    true,
			Icon:     defaultIcon,
		},
		{
			UID:      "preview",
			Title:    "AI will normalize your input for Fantastical",
			Subtitle: "Example: 'Lunch with Anna on Tuesday, August 12 at 12 pm' for reliable parsing",
			Valid:    false,
			Icon:     defaultIcon,
		},
	}}
}

// Write encodes the filter response for a query onto w.
func Write(w io.Writer, query string) error {
	return json.NewEncoder(w).Encode(Filter(query))
}

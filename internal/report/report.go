// Package report maps internal errors to the fixed user-facing
// messages shown in Alfred.
package report

import (
	"errors"
	"net/http"

	"focal/internal/config"
	"focal/internal/event"
	"focal/internal/openai"
	"focal/internal/osascript"
)

// Category is the user-facing error classification.
type Category string

const (
	CategoryCredential Category = "credential"
	CategoryRateLimit  Category = "rate_limit"
	CategoryRemote     Category = "remote"
	CategoryExtraction Category = "extraction"
	CategoryScript     Category = "script"
	CategoryAppMissing Category = "app_missing"
	CategoryInput      Category = "input"
	CategoryUnknown    Category = "unknown"
)

// Message is what the user sees for a failure.
type Message struct {
	Title      string
	Message    string
	Suggestion string
}

var messages = map[Category]Message{
	CategoryCredential: {
		Title:      "OpenAI API Key Missing",
		Message:    "No valid OpenAI API key was found.",
		Suggestion: "Run 'focal configure --api-key <key>' or set FOCAL_OPENAI_KEY",
	},
	CategoryRateLimit: {
		Title:      "API Rate Limit Reached",
		Message:    "OpenAI API rate limit exceeded.",
		Suggestion: "Wait a few minutes and try again",
	},
	CategoryRemote: {
		Title:      "OpenAI API Error",
		Message:    "Error communicating with the OpenAI API.",
		Suggestion: "Check your internet connection and API key",
	},
	CategoryExtraction: {
		Title:      "Could Not Understand Event",
		Message:    "The extracted event did not match the expected format.",
		Suggestion: "Try rephrasing, e.g. 'Lunch with Anna on Tuesday at 12 pm'",
	},
	CategoryScript: {
		Title:      "Calendar Script Failed",
		Message:    "The calendar app rejected the generated event.",
		Suggestion: "Try rephrasing, e.g. 'Event title on Monday at 2pm'",
	},
	CategoryAppMissing: {
		Title:      "Calendar App Not Found",
		Message:    "The configured calendar app is not installed or not reachable.",
		Suggestion: "Install the app or switch with 'focal configure --app calendar'",
	},
	CategoryInput: {
		Title:      "Invalid Event Description",
		Message:    "The event description is empty or too short.",
		Suggestion: "Describe the event, e.g. 'Team meeting next Tuesday at 2pm'",
	},
}

// Classify buckets an error into a user-facing category.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if errors.Is(err, config.ErrNoAPIKey) {
		return CategoryCredential
	}
	if errors.Is(err, event.ErrInputTooShort) {
		return CategoryInput
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return CategoryCredential
		case http.StatusTooManyRequests:
			return CategoryRateLimit
		default:
			return CategoryRemote
		}
	}

	var exErr *event.ExtractionError
	if errors.As(err, &exErr) {
		return CategoryExtraction
	}

	var scriptErr *osascript.ScriptError
	if errors.As(err, &scriptErr) {
		if scriptErr.AppMissing() {
			return CategoryAppMissing
		}
		return CategoryScript
	}

	return CategoryUnknown
}

// UserMessage returns the display triple for an error. Unrecognized
// errors fall into a generic message carrying the raw error text.
func UserMessage(err error) Message {
	category := Classify(err)
	if msg, ok := messages[category]; ok {
		return msg
	}
	return Message{
		Title:      "Unexpected Error",
		Message:    err.Error(),
		Suggestion: "Please try again",
	}
}

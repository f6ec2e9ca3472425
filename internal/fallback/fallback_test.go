package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Parsed
	}{
		{
			name:     "title date time",
			input:    "Meeting tomorrow at 2pm",
			expected: Parsed{Title: "Meeting", Date: "tomorrow", Time: "2pm"},
		},
		{
			name:     "title time date",
			input:    "Lunch with Anna at noon tomorrow",
			expected: Parsed{Title: "Lunch with Anna", Time: "noon", Date: "tomorrow"},
		},
		{
			name:     "title time only",
			input:    "Lunch tomorrow at noon",
			expected: Parsed{Title: "Lunch tomorrow", Time: "noon"},
		},
		{
			name:     "weekday with minutes",
			input:    "Standup monday at 9:30 am",
			expected: Parsed{Title: "Standup", Date: "monday", Time: "9:30 am"},
		},
		{
			name:     "no pattern matches",
			input:    "Think about the offsite agenda",
			expected: Parsed{Title: "Think about the offsite agenda"},
		},
		{
			name:     "casing preserved in captures",
			input:    "Coffee With Sarah Tomorrow at 10am",
			expected: Parsed{Title: "Coffee With Sarah", Date: "Tomorrow", Time: "10am"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestSentence(t *testing.T) {
	tests := []struct {
		name     string
		parsed   Parsed
		expected string
	}{
		{
			name:     "all components in fixed order",
			parsed:   Parsed{Title: "Meeting", Date: "tomorrow", Time: "2pm", Location: "Room A"},
			expected: "Meeting on tomorrow at 2pm at Room A",
		},
		{
			name:     "noon normalized",
			parsed:   Parsed{Title: "Lunch", Time: "noon"},
			expected: "Lunch at 12 pm",
		},
		{
			name:     "title only",
			parsed:   Parsed{Title: "Dentist"},
			expected: "Dentist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.parsed.Sentence())
		})
	}
}

func TestScript(t *testing.T) {
	t.Run("lunch at noon", func(t *testing.T) {
		script := Parse("Lunch tomorrow at noon").Script()

		assert.Contains(t, script, "Lunch")
		assert.Contains(t, script, "12 pm")
		assert.Contains(t, script, `tell application "Fantastical"`)
		assert.Contains(t, script, "with add immediately")
		assert.NotContains(t, script, "notes")
	})

	t.Run("empty title yields no script", func(t *testing.T) {
		assert.Empty(t, Parsed{}.Script())
	})
}

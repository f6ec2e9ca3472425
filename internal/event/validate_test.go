package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focal/internal/timeutil"
)

const validTimed = `{"title":"Standup","start_date":"2025-08-12","end_date":"2025-08-12","all_day":false,"start_time":"09:00","end_time":"10:00","location":null,"notes":null,"recurrence":null}`

func TestParseResponse_Timed(t *testing.T) {
	ev, err := ParseResponse(validTimed)
	require.NoError(t, err)

	assert.Equal(t, "Standup", ev.Title)
	assert.False(t, ev.AllDay)
	require.NotNil(t, ev.StartTime)
	require.NotNil(t, ev.EndTime)
	assert.Equal(t, timeutil.Clock{Hour: 9}, *ev.StartTime)
	assert.Equal(t, timeutil.Clock{Hour: 10}, *ev.EndTime)
	assert.Empty(t, ev.Location)
	assert.Empty(t, ev.Recurrence)
}

func TestParseResponse_AllDayDropsTimes(t *testing.T) {
	ev, err := ParseResponse(`{"title":"Retreat","start_date":"2025-08-24","end_date":"2025-08-30","all_day":true,"start_time":"09:00","end_time":"17:00"}`)
	require.NoError(t, err)

	assert.True(t, ev.AllDay)
	assert.Nil(t, ev.StartTime)
	assert.Nil(t, ev.EndTime)
	assert.False(t, ev.SameDay())
}

func TestParseResponse_FencedResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "json fence", raw: "```json\n" + validTimed + "\n```"},
		{name: "bare fence", raw: "```\n" + validTimed + "\n```"},
		{name: "fence with trailing newline", raw: "```json\n" + validTimed + "\n```\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseResponse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, "Standup", ev.Title)
		})
	}
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		field  string
		reason string
	}{
		{
			name:  "not json",
			raw:   "Sorry, I could not process that request.",
			field: "",
		},
		{
			name:  "missing title",
			raw:   `{"start_date":"2025-08-12","end_date":"2025-08-12","all_day":true}`,
			field: "title",
		},
		{
			name:  "null title",
			raw:   `{"title":null,"start_date":"2025-08-12","end_date":"2025-08-12","all_day":true}`,
			field: "title",
		},
		{
			name:  "missing all_day",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12"}`,
			field: "all_day",
		},
		{
			name:  "all_day wrong type",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":"yes"}`,
			field: "all_day",
		},
		{
			name:  "bad start_date",
			raw:   `{"title":"X","start_date":"12/08/2025","end_date":"2025-08-12","all_day":true}`,
			field: "start_date",
		},
		{
			name:  "end before start",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-11","all_day":true}`,
			field: "end_date",
		},
		{
			name:  "timed without start_time",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":false,"end_time":"10:00"}`,
			field: "start_time",
		},
		{
			name:  "timed with null end_time",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":false,"start_time":"09:00","end_time":null}`,
			field: "end_time",
		},
		{
			name:  "timed with unparseable time",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":false,"start_time":"9 am","end_time":"10:00"}`,
			field: "start_time",
		},
		{
			name:  "unknown recurrence",
			raw:   `{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":true,"recurrence":"fortnightly"}`,
			field: "recurrence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			require.Error(t, err)

			var exErr *ExtractionError
			require.ErrorAs(t, err, &exErr)
			assert.Equal(t, tt.field, exErr.Field)
		})
	}
}

func TestParseResponse_NeverAcceptsInvalidTime(t *testing.T) {
	// A timed event must carry both times in 24-hour HH:MM form or be
	// rejected outright; it must never slip through half-validated.
	for _, bad := range []string{"24:00", "9:0", "noon", "09:00:00", "0900"} {
		_, err := ParseResponse(`{"title":"X","start_date":"2025-08-12","end_date":"2025-08-12","all_day":false,"start_time":"` + bad + `","end_time":"10:00"}`)
		assert.Error(t, err, "time %q should be rejected", bad)
	}
}

package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focal/internal/config"
	"focal/internal/event"
	"focal/internal/render"
	"focal/internal/timeutil"
)

type fakeExtractor struct {
	ev           *event.Event
	err          error
	text         string
	unconfigured bool
}

func (f *fakeExtractor) ExtractEvent(_ context.Context, text string, _ time.Time) (*event.Event, error) {
	f.text = text
	return f.ev, f.err
}

func (f *fakeExtractor) IsConfigured() bool {
	return !f.unconfigured
}

type fakeScripts struct {
	scripts []string
	err     error
}

func (f *fakeScripts) Run(_ context.Context, script string) error {
	f.scripts = append(f.scripts, script)
	return f.err
}

func testRunner(cfg *config.Config, ex Extractor, sc ScriptRunner) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: ex,
		scripts:   sc,
		now:       func() time.Time { return time.Date(2025, time.August, 11, 14, 30, 0, 0, time.UTC) },
	}
}

func timedEvent() *event.Event {
	start, _ := timeutil.ParseClock("09:00")
	end, _ := timeutil.ParseClock("10:00")
	return &event.Event{
		Title:     "Standup",
		StartDate: time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC),
		StartTime: &start,
		EndTime:   &end,
	}
}

func TestCreate_Fantastical(t *testing.T) {
	ex := &fakeExtractor{ev: timedEvent()}
	sc := &fakeScripts{}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppFantastical}

	res, err := testRunner(cfg, ex, sc).Create(context.Background(), "standup tomorrow at 9am")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.False(t, res.UsedFallback)
	assert.Equal(t, "Standup on August 12, 2025 at 09:00 AM", res.Sentence)
	require.Len(t, sc.scripts, 1)
	assert.Contains(t, sc.scripts[0], `tell application "Fantastical"`)
	assert.Equal(t, "standup tomorrow at 9am", ex.text)
}

func TestCreate_AppleCalendar(t *testing.T) {
	ex := &fakeExtractor{ev: timedEvent()}
	sc := &fakeScripts{}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppCalendar, CalendarName: "Work"}

	res, err := testRunner(cfg, ex, sc).Create(context.Background(), "standup tomorrow at 9am")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Empty(t, res.Sentence)
	require.Len(t, sc.scripts, 1)
	assert.Contains(t, sc.scripts[0], `tell application "Calendar"`)
	assert.Contains(t, sc.scripts[0], `calendar "Work"`)
}

func TestCreate_SanitizesInput(t *testing.T) {
	ex := &fakeExtractor{ev: timedEvent()}
	sc := &fakeScripts{}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppFantastical}

	_, err := testRunner(cfg, ex, sc).Create(context.Background(), `meet "Anna" \tomorrow`)
	require.NoError(t, err)
	assert.Equal(t, "meet 'Anna' tomorrow", ex.text)
}

func TestCreate_FallbackOnExtractionFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("model unavailable")}
	sc := &fakeScripts{}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppCalendar}

	res, err := testRunner(cfg, ex, sc).Create(context.Background(), "Lunch tomorrow at noon")
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Contains(t, res.Sentence, "Lunch")
	require.Len(t, sc.scripts, 1)
	assert.Contains(t, sc.scripts[0], `tell application "Fantastical"`)
}

func TestCreate_FallbackScriptFailureSurfacesExtractionError(t *testing.T) {
	extractionErr := errors.New("model unavailable")
	ex := &fakeExtractor{err: extractionErr}
	sc := &fakeScripts{err: errors.New("osascript exploded")}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppFantastical}

	_, err := testRunner(cfg, ex, sc).Create(context.Background(), "Lunch tomorrow at noon")
	require.ErrorIs(t, err, extractionErr)
	require.Len(t, sc.scripts, 1)
}

func TestCreate_ScriptFailurePropagates(t *testing.T) {
	ex := &fakeExtractor{ev: timedEvent()}
	sc := &fakeScripts{err: errors.New("execution error")}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppFantastical}

	_, err := testRunner(cfg, ex, sc).Create(context.Background(), "standup tomorrow at 9am")
	require.Error(t, err)
	require.Len(t, sc.scripts, 1)
}

func TestCreate_InputTooShort(t *testing.T) {
	sc := &fakeScripts{}
	cfg := &config.Config{APIKey: "sk-test", App: render.AppFantastical}

	_, err := testRunner(cfg, &fakeExtractor{}, sc).Create(context.Background(), "  a ")
	assert.ErrorIs(t, err, event.ErrInputTooShort)
	assert.Empty(t, sc.scripts)
}

func TestCreate_MissingAPIKey(t *testing.T) {
	sc := &fakeScripts{}
	cfg := &config.Config{App: render.AppFantastical}

	_, err := testRunner(cfg, &fakeExtractor{unconfigured: true}, sc).Create(context.Background(), "standup tomorrow")
	assert.ErrorIs(t, err, config.ErrNoAPIKey)
	assert.Empty(t, sc.scripts)
}

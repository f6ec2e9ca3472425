// Package workflow drives a single event creation run from raw input
// to an executed calendar script.
package workflow

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"focal/internal/config"
	"focal/internal/event"
	"focal/internal/fallback"
	"focal/internal/openai"
	"focal/internal/osascript"
	"focal/internal/render"
)

// Extractor turns free-form text into a structured event.
type Extractor interface {
	ExtractEvent(ctx context.Context, text string, now time.Time) (*event.Event, error)
	IsConfigured() bool
}

// ScriptRunner executes a generated AppleScript.
type ScriptRunner interface {
	Run(ctx context.Context, script string) error
}

// Result describes what a run produced.
type Result struct {
	Created      bool
	UsedFallback bool
	Sentence     string
	Script       string
}

// Runner wires extraction, rendering and script execution together.
type Runner struct {
	cfg       *config.Config
	extractor Extractor
	scripts   ScriptRunner
	now       func() time.Time
}

// New builds a Runner backed by the live LLM client and osascript.
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: openai.NewClient(cfg.APIKey, cfg.Model, cfg.Temperature),
		scripts:   osascript.NewRunner(cfg.ScriptTimeout),
		now:       time.Now,
	}
}

// Create turns text into a calendar event in the configured app.
// Extraction failures degrade to the regex fallback parser; if the
// fallback cannot produce a runnable script either, the extraction
// error is surfaced unchanged. Script execution is never retried.
func (r *Runner) Create(ctx context.Context, text string) (*Result, error) {
	clean := event.Sanitize(text)
	if utf8.RuneCountInString(clean) < event.MinInputLen {
		return nil, event.ErrInputTooShort
	}
	if !r.extractor.IsConfigured() {
		return nil, config.ErrNoAPIKey
	}

	logger := log.With().Str("run_id", uuid.NewString()).Logger()
	now := r.now()

	ev, err := r.extractor.ExtractEvent(ctx, clean, now)
	if err != nil {
		logger.Warn().Err(err).Msg("extraction failed, trying fallback parser")
		parsed := fallback.Parse(clean)
		script := parsed.Script()
		if script == "" {
			return nil, err
		}
		// When the fallback fails too, the extraction error is surfaced.
		if runErr := r.scripts.Run(ctx, script); runErr != nil {
			logger.Warn().Err(runErr).Msg("fallback script failed")
			return nil, err
		}
		logger.Info().Str("sentence", parsed.Sentence()).Msg("event created via fallback")
		return &Result{
			Created:      true,
			UsedFallback: true,
			Sentence:     parsed.Sentence(),
			Script:       script,
		}, nil
	}

	result := &Result{Created: true}
	var script string
	switch r.cfg.App {
	case render.AppFantastical:
		result.Sentence = render.Sentence(ev, r.cfg.CalendarName)
		script = render.FantasticalScript(ev, r.cfg.CalendarName, clean, now)
	default:
		script = render.CalendarScript(ev, r.cfg.CalendarName, clean, now)
	}
	result.Script = script

	if err := r.scripts.Run(ctx, script); err != nil {
		return nil, err
	}
	logger.Info().
		Str("title", ev.Title).
		Bool("all_day", ev.AllDay).
		Str("app", string(r.cfg.App)).
		Msg("event created")
	return result, nil
}

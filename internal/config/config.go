// Package config loads the credential and calendar preferences once at
// startup. Values live in plain-text files under the config directory,
// with environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focal/internal/render"
)

// ErrNoAPIKey means no OpenAI API key was found in the environment or
// the key file. There is nothing to fall back to without it.
var ErrNoAPIKey = errors.New("OpenAI API key not found")

// File names inside the config directory.
const (
	keyFile        = ".openai_key"
	appFile        = ".calendar_app"
	calendarFile   = ".calendar_name"
	defaultDirName = "focal"
	defaultApp     = render.AppCalendar
	defaultTimeout = 15 * time.Second
)

type Config struct {
	// Required
	APIKey string

	// Calendar preference
	App          render.App
	CalendarName string

	// Optional with defaults
	Model         string
	Temperature   float64
	ScriptTimeout time.Duration

	// Dir is where the preference files live.
	Dir string
}

// Load reads the configuration once. A missing API key is not an error
// here; commands that need the remote service check for it themselves.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:        getEnvOrDefault("FOCAL_OPENAI_KEY", readFileValue(filepath.Join(dir, keyFile))),
		App:           ParseApp(getEnvOrDefault("FOCAL_CALENDAR_APP", readFileValue(filepath.Join(dir, appFile)))),
		CalendarName:  getEnvOrDefault("FOCAL_CALENDAR_NAME", readFileValue(filepath.Join(dir, calendarFile))),
		Model:         getEnvOrDefault("FOCAL_MODEL", ""),
		Temperature:   getEnvAsFloatOrDefault("FOCAL_TEMPERATURE", 0.1),
		ScriptTimeout: getEnvAsDurationOrDefault("FOCAL_SCRIPT_TIMEOUT", defaultTimeout),
		Dir:           dir,
	}

	return cfg, nil
}

// Dir returns the config directory, creating it if needed.
func Dir() (string, error) {
	if dir := os.Getenv("FOCAL_CONFIG_DIR"); dir != "" {
		return dir, ensureDir(dir)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	dir := filepath.Join(base, defaultDirName)
	return dir, ensureDir(dir)
}

// ParseApp maps a preference value to a target application; anything
// unrecognized means the default.
func ParseApp(value string) render.App {
	if strings.EqualFold(strings.TrimSpace(value), string(render.AppFantastical)) {
		return render.AppFantastical
	}
	return defaultApp
}

// SaveAPIKey writes the credential file.
func SaveAPIKey(dir, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key is empty")
	}
	return writeFileValue(filepath.Join(dir, keyFile), key)
}

// SaveApp writes the calendar application preference.
func SaveApp(dir string, app render.App) error {
	return writeFileValue(filepath.Join(dir, appFile), string(app))
}

// SaveCalendarName writes the target calendar preference. An empty
// name means the application's default calendar.
func SaveCalendarName(dir, name string) error {
	return writeFileValue(filepath.Join(dir, calendarFile), strings.TrimSpace(name))
}

func readFileValue(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeFileValue(path, value string) error {
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

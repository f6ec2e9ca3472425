// Package osascript executes generated automation scripts through the
// platform script interpreter.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	minTimeout     = 5 * time.Second
	maxTimeout     = 30 * time.Second
)

// ScriptError is a failed script execution, carrying the generated
// script to aid diagnosis.
type ScriptError struct {
	Script   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

func (e *ScriptError) Error() string {
	if e.TimedOut {
		return "script execution timed out"
	}
	return fmt.Sprintf("script execution failed (exit %d): %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

// AppMissing reports whether stderr indicates the target application
// is not installed or cannot be reached.
func (e *ScriptError) AppMissing() bool {
	stderr := strings.ToLower(e.Stderr)
	return strings.Contains(stderr, "application can't be found") ||
		strings.Contains(stderr, "application isn't running") ||
		strings.Contains(stderr, "can't get application")
}

// Runner invokes the script interpreter as a subprocess with a bounded
// timeout. One invocation runs at most one script; there is no retry.
type Runner struct {
	bin     string
	flag    string
	timeout time.Duration
}

// NewRunner creates a Runner with the given timeout, clamped to the
// 5-30s range.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if timeout < minTimeout {
		timeout = minTimeout
	}
	if timeout > maxTimeout {
		timeout = maxTimeout
	}

	return &Runner{
		bin:     "osascript",
		flag:    "-e",
		timeout: timeout,
	}
}

// Run executes the script and interprets the exit status. A non-zero
// exit or timeout returns a *ScriptError.
func (r *Runner) Run(ctx context.Context, script string) error {
	_, err := r.run(ctx, script)
	return err
}

// RunOutput executes the script and returns its trimmed stdout.
func (r *Runner) RunOutput(ctx context.Context, script string) (string, error) {
	return r.run(ctx, script)
}

func (r *Runner) run(ctx context.Context, script string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, r.flag, script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	scriptErr := &ScriptError{
		Script:   script,
		Stderr:   stderr.String(),
		ExitCode: -1,
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		scriptErr.ExitCode = exitErr.ExitCode()
	}

	return "", scriptErr
}

// Package logging builds the process logger from settings.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"taskmenu/internal/config"
)

// Logger is a charm logger whose stderr sink can be muted while a full-screen
// UI owns the terminal.
type Logger struct {
	*log.Logger

	stderr    io.Writer
	toFile    bool
	closeFile func() error
}

// New logs to stderr with the text formatter, or in logfmt to cfg.File when
// set. Every record carries the session id.
func New(cfg config.LoggingConfig, stderr io.Writer, session string) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if stderr == nil {
		stderr = io.Discard
	}

	l := &Logger{stderr: stderr}

	out := stderr
	formatter := log.TextFormatter
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		formatter = log.LogfmtFormatter
		l.toFile = true
		l.closeFile = f.Close
	}

	base := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "taskmenu",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
	if session != "" {
		base = base.With("session", session)
	}
	l.Logger = base
	return l, nil
}

// Mute silences a stderr sink. File sinks keep logging.
func (l *Logger) Mute() {
	if !l.toFile {
		l.SetOutput(io.Discard)
	}
}

// Unmute restores a muted stderr sink.
func (l *Logger) Unmute() {
	if !l.toFile {
		l.SetOutput(l.stderr)
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}

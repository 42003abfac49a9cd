// Package log provides structured event logging.
// Events are JSON lines written through log/slog to a rotating file.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event name constants, used as the slog message.
const (
	EventSessionStarted     = "session_started"
	EventAnswerCommitted    = "answer_committed"
	EventAnswerRejected     = "answer_rejected"
	EventSummaryGenerated   = "summary_generated"
	EventSummaryUnavailable = "summary_unavailable"
	EventSessionComplete    = "session_complete"
	EventSessionReset       = "session_reset"
	EventAIToggled          = "ai_toggled"
	EventExportWritten      = "export_written"
)

// Options selects where log output goes.
type Options struct {
	// File is the log file path. When empty, output goes to Fallback.
	File  string
	Level slog.Level
	// Fallback receives output when File is empty. Nil discards it.
	Fallback io.Writer
}

// New returns a JSON logger for opts and a Closer that releases the file
// sink. The Closer is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if opts.File == "" {
		if opts.Fallback == nil {
			return slog.New(slog.DiscardHandler), nopCloser{}, nil
		}
		return slog.New(slog.NewJSONHandler(opts.Fallback, handlerOpts)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(sink, handlerOpts)), sink, nil
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

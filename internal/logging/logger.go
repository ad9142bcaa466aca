// Package logging provides a runtime.Logger backed by log/slog so game code
// logs the same way whether it runs inside a Nakama module or a terminal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseLevel maps a level name to a slog.Level. Unknown names default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger implements runtime.Logger on top of an slog.Logger.
type Logger struct {
	base   *slog.Logger
	fields map[string]interface{}
}

var _ runtime.Logger = (*Logger)(nil)

// New returns a Logger writing to w in the given format at the given level.
func New(w io.Writer, format Format, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return FromSlog(slog.New(h))
}

// FromSlog wraps an existing slog.Logger.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{base: l, fields: map[string]interface{}{}}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return FromSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &Logger{base: l.base.With(args...), fields: merged}
}

// Fields returns a copy of the fields attached with WithField(s).
func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.base.Enabled(ctx, level) {
		return
	}
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	l.base.Log(ctx, level, msg)
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, FormatText, slog.LevelDebug)

	l.Info("seat %d played %s", 2, "C[3]")

	if !strings.Contains(buf.String(), "seat 2 played C[3]") {
		t.Fatalf("output = %q, want formatted message", buf.String())
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, FormatText, slog.LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn not written: %q", buf.String())
	}
}

func TestWithFieldJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, FormatJSON, slog.LevelInfo).WithField("game_id", "g1")

	l.Error("boom")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if rec["game_id"] != "g1" {
		t.Fatalf("game_id = %v, want g1", rec["game_id"])
	}
	if rec["msg"] != "boom" {
		t.Fatalf("msg = %v, want boom", rec["msg"])
	}
	if rec["level"] != "ERROR" {
		t.Fatalf("level = %v, want ERROR", rec["level"])
	}
}

func TestFieldsAccumulate(t *testing.T) {
	base := Discard()
	l := base.WithField("a", 1).WithFields(map[string]interface{}{"b": 2})

	fields := l.Fields()
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("fields = %v, want a=1 b=2", fields)
	}
	if len(base.Fields()) != 0 {
		t.Fatalf("parent logger gained fields: %v", base.Fields())
	}

	fields["c"] = 3
	if _, ok := l.Fields()["c"]; ok {
		t.Fatalf("Fields must return a copy")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerTextDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Writer: &buf, Service: "svc", Version: "v1"})

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") {
		t.Fatalf("expected text output, got %q", out)
	}
	if !strings.Contains(out, "service=svc") || !strings.Contains(out, "version=v1") {
		t.Fatalf("expected service/version fields, got %q", out)
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Writer: &buf, Format: "json"})

	logger.Info("hello", FieldGameID, 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" {
		t.Fatalf("unexpected message %v", entry["msg"])
	}
	if entry[FieldGameID] != float64(7) {
		t.Fatalf("expected game_id field, got %v", entry[FieldGameID])
	}
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Writer: &buf, Level: "warn"})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected warn to pass, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestHelpersNilSafe(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}

func TestErrorAppendsErrField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Writer: &buf})

	Error(logger, "failed", context.Canceled)

	if !strings.Contains(buf.String(), "context canceled") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}

func TestContextCarriesLogger(t *testing.T) {
	logger := slog.Default()
	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx, nil); got != logger {
		t.Fatalf("expected logger from context")
	}

	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil context")
	}
}

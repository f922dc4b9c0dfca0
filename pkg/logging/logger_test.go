package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func parseEntries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("also kept")

	entries := parseEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != "WARN" || entries[0].Message != "kept" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != "ERROR" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("built",
		Node("/nodeA"),
		Topic("/out"),
		Count(2),
		Error(errors.New("boom")),
	)

	entries := parseEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Fields
	if fields["node"] != "/nodeA" {
		t.Errorf("node field = %v", fields["node"])
	}
	if fields["topic"] != "/out" {
		t.Errorf("topic field = %v", fields["topic"])
	}
	if fields["count"] != float64(2) {
		t.Errorf("count field = %v", fields["count"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error field = %v", fields["error"])
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(Node("/nodeA"))

	logger.Info("first")
	logger.Info("second", Operation("build"))

	entries := parseEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Fields["node"] != "/nodeA" {
			t.Errorf("pre-set field missing in %+v", entry)
		}
	}
	if entries[1].Fields["operation"] != "build" {
		t.Errorf("per-call field missing: %+v", entries[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	// Must not panic and With must stay a nop.
	logger.With(Node("/x")).Error("ignored", Error(nil))
}

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEventLogAppendAndReadAll(t *testing.T) {
	l, err := NewEventLog(filepath.Join(t.TempDir(), "nested", "events.jsonl"))
	if err != nil {
		t.Fatalf("NewEventLog: %v", err)
	}

	if err := l.Append(LogEvent{Event: EventDetectStarted, Root: "/repo"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Append(LogEvent{Event: EventStackResolved, Stack: "go", Template: "go.yml.j2"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	events, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Stack != "go" {
		t.Errorf("Stack = %q, want %q", events[1].Stack, "go")
	}
	if events[0].Time.IsZero() {
		t.Error("Time was not stamped")
	}
}

func TestEventLogMissingFile(t *testing.T) {
	l, err := NewEventLog(filepath.Join(t.TempDir(), "events.jsonl"))
	if err != nil {
		t.Fatalf("NewEventLog: %v", err)
	}
	events, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestEventLogMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	if err := os.WriteFile(path, []byte(`{"event":"detect_started"}`+"\nnot json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := NewEventLog(path)
	if err != nil {
		t.Fatalf("NewEventLog: %v", err)
	}
	if _, err := l.ReadAll(); err == nil || !strings.Contains(err.Error(), "event 2") {
		t.Errorf("ReadAll() error = %v, want parse error for event 2", err)
	}
}

func TestNilEventLogDiscards(t *testing.T) {
	var l *EventLog
	if err := l.Append(LogEvent{Event: EventDetectStarted}); err != nil {
		t.Errorf("nil Append: %v", err)
	}
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := New("loud", &buf); err == nil {
		t.Error("New accepted an unknown level")
	}
}

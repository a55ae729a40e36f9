// events.go appends JSON events to a JSONL file.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventDetectStarted   = "detect_started"
	EventStackResolved   = "stack_resolved"
	EventEnvScanComplete = "env_scan_complete"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time       time.Time `json:"time"`
	Event      string    `json:"event"`
	Root       string    `json:"root,omitempty"`
	Stack      string    `json:"stack,omitempty"`
	Template   string    `json:"template,omitempty"`
	Danger     int       `json:"danger,omitempty"`
	Examples   int       `json:"examples,omitempty"`
	Suspicious int       `json:"suspicious,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
}

// EventLog writes append-only JSONL events to a file.
// A nil *EventLog discards events.
type EventLog struct {
	path string
	mu   sync.Mutex
}

// NewEventLog creates an EventLog that writes to path.
// Creates the parent directory if it does not already exist.
// Does not truncate an existing log file.
func NewEventLog(path string) (*EventLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create event log directory: %w", err)
	}
	return &EventLog{path: path}, nil
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
func (l *EventLog) Append(event LogEvent) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll decodes every event in the log file, oldest first. A missing file
// yields no events.
func (l *EventLog) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	events := []LogEvent{}
	dec := json.NewDecoder(bufio.NewReader(f))
	for {
		var event LogEvent
		err := dec.Decode(&event)
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse log event %d: %w", len(events)+1, err)
		}
		events = append(events, event)
	}
}

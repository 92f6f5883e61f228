package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.plog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{
			Timestamp: base, ConnectionID: "conn-1", DeviceID: "drone-a",
			Direction: DirectionOut, Layer: LayerApplication, Category: CategoryCommand,
			Command: &CommandEvent{Component: "manualCopter", Command: "activate", Accepted: true},
		},
		{
			Timestamp: base.Add(time.Second), ConnectionID: "conn-1", DeviceID: "drone-a",
			Direction: DirectionIn, Layer: LayerBackend, Category: CategoryState,
			StateChange: &StateChangeEvent{Entity: StateEntityComponent, Component: "manualCopter", OldState: "IDLE", NewState: "ACTIVE"},
		},
		{
			Timestamp: base.Add(2 * time.Second), ConnectionID: "conn-1", DeviceID: "drone-a",
			Direction: DirectionLocal, Layer: LayerComponent, Category: CategoryCommit,
			Commit: &CommitEvent{Components: []string{"manualCopter", "returnHome"}},
		},
		{
			Timestamp: base.Add(3 * time.Second), ConnectionID: "conn-2", DeviceID: "drone-b",
			Direction: DirectionOut, Layer: LayerApplication, Category: CategoryCommand,
			Command: &CommandEvent{Component: "returnHome", Command: "activate"},
		},
		{
			Timestamp: base.Add(4 * time.Second), ConnectionID: "conn-2", DeviceID: "drone-b",
			Direction: DirectionLocal, Layer: LayerBackend, Category: CategoryError,
			Error: &ErrorEventData{Layer: LayerBackend, Message: "timeout", Context: "returnHome.activate"},
		},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path := createTestLogFile(t, sampleEvents(base))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 5 {
		t.Fatalf("expected 5 events, got %d", len(read))
	}
	if read[3].ConnectionID != "conn-2" {
		t.Errorf("event 3: got connection %q", read[3].ConnectionID)
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "absent.plog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path := createTestLogFile(t, sampleEvents(base))

	dirOut := DirectionOut
	layerBackend := LayerBackend
	catCommand := CategoryCommand
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"None", Filter{}, 5},
		{"Connection", Filter{ConnectionID: "conn-2"}, 2},
		{"Direction", Filter{Direction: &dirOut}, 2},
		{"Layer", Filter{Layer: &layerBackend}, 2},
		{"Category", Filter{Category: &catCommand}, 2},
		{"TimeRange", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"Device", Filter{DeviceID: "drone-a"}, 3},
		{"ComponentIncludesCommit", Filter{Component: "manualCopter"}, 3},
		{"ComponentOnlyInCommit", Filter{Component: "returnHome"}, 2},
		{"Combined", Filter{ConnectionID: "conn-1", Category: &catCommand}, 1},
		{"NoMatch", Filter{DeviceID: "drone-z"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ReadAll(path, tt.filter)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("expected %d events, got %d", tt.want, len(events))
			}
			for _, e := range events {
				if !tt.filter.Matches(e) {
					t.Errorf("returned event does not match filter: %+v", e)
				}
			}
		})
	}
}

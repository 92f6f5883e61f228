package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func commandEvent(conn, component, command string) Event {
	return Event{
		Timestamp:    time.Now(),
		ConnectionID: conn,
		Direction:    DirectionOut,
		Layer:        LayerApplication,
		Category:     CategoryCommand,
		Command:      &CommandEvent{Component: component, Command: command, Accepted: true},
	}
}

func TestFileLoggerWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.plog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(commandEvent("conn-1", "manualCopter", "activate"))
	logger.Log(commandEvent("conn-1", "manualCopter", "takeOff"))

	written, dropped := logger.Counts()
	if written != 2 || dropped != 0 {
		t.Errorf("Counts() = %d, %d; want 2, 0", written, dropped)
	}
	if logger.Path() != path {
		t.Errorf("Path() = %q, want %q", logger.Path(), path)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events, err := ReadAll(path, Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Command.Command != "takeOff" {
		t.Errorf("second command: got %q", events[1].Command.Command)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.plog")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(commandEvent("conn-1", "lookAt", "activate"))
		logger.Close()
	}

	events, err := ReadAll(path, Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events after reopening, got %d", len(events))
	}
}

func TestTruncatingFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.plog")

	first, _ := NewFileLogger(path)
	first.Log(commandEvent("conn-1", "lookAt", "activate"))
	first.Close()

	second, err := NewTruncatingFileLogger(path)
	if err != nil {
		t.Fatalf("NewTruncatingFileLogger failed: %v", err)
	}
	second.Log(commandEvent("conn-2", "guided", "activate"))
	second.Close()

	events, err := ReadAll(path, Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 1 || events[0].ConnectionID != "conn-2" {
		t.Errorf("expected only the second session, got %+v", events)
	}
}

func TestFileLoggerIgnoresEventsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.plog")
	logger, _ := NewFileLogger(path)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	logger.Log(commandEvent("conn-1", "guided", "activate"))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.plog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const writers, perWriter = 4, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				logger.Log(commandEvent("conn-1", "followMe", "activate"))
			}
		}()
	}
	wg.Wait()
	logger.Close()

	events, err := ReadAll(path, Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != writers*perWriter {
		t.Errorf("expected %d events, got %d", writers*perWriter, len(events))
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "flight.plog"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

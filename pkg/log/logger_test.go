package log

import (
	"sync"
	"testing"
)

// captureLogger records events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestNoopLoggerZeroValue(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{Category: CategoryCommand, Command: &CommandEvent{Component: "manualCopter"}})
}

func TestNoopLoggerConcurrent(t *testing.T) {
	var l NoopLogger
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Log(Event{})
			}
		}()
	}
	wg.Wait()
}

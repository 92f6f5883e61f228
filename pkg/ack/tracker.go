package ack

import (
	"errors"
	"sync"
	"time"
)

// Tracker limits.
const (
	// MinTimeout is the shortest accepted acknowledgement timeout.
	MinTimeout = 10 * time.Millisecond

	// MaxTimeout is the longest accepted acknowledgement timeout.
	MaxTimeout = 5 * time.Minute

	// DefaultTimeout is used when no timeout is configured.
	DefaultTimeout = 3 * time.Second
)

// Tracker errors.
var (
	ErrInvalidTimeout = errors.New("invalid acknowledgement timeout")
	ErrAlreadyPending = errors.New("command already pending")
	ErrTrackerStopped = errors.New("tracker stopped")
)

// Stats holds tracker counters.
type Stats struct {
	Started  uint64
	Acked    uint64
	TimedOut uint64
}

type pending struct {
	timer     *time.Timer
	startedAt time.Time
	onTimeout func()
}

// Tracker tracks pending commands by key, typically "<component>.<command>".
type Tracker struct {
	mu sync.Mutex

	timeout time.Duration
	pending map[string]*pending
	stopped bool
	stats   Stats
}

// NewTracker creates a tracker. A zero timeout selects DefaultTimeout.
func NewTracker(timeout time.Duration) (*Tracker, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < MinTimeout || timeout > MaxTimeout {
		return nil, ErrInvalidTimeout
	}
	return &Tracker{
		timeout: timeout,
		pending: make(map[string]*pending),
	}, nil
}

// Timeout returns the acknowledgement timeout.
func (t *Tracker) Timeout() time.Duration {
	return t.timeout
}

// Start begins tracking a command. onTimeout may be nil.
func (t *Tracker) Start(key string, onTimeout func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return ErrTrackerStopped
	}
	if _, exists := t.pending[key]; exists {
		return ErrAlreadyPending
	}

	p := &pending{startedAt: time.Now(), onTimeout: onTimeout}
	p.timer = time.AfterFunc(t.timeout, func() {
		t.expire(key, p)
	})
	t.pending[key] = p
	t.stats.Started++
	return nil
}

// Ack stops tracking a command. It returns false if the command was not
// pending, either because it was never started or because it timed out.
func (t *Tracker) Ack(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, exists := t.pending[key]
	if !exists {
		return false
	}
	p.timer.Stop()
	delete(t.pending, key)
	t.stats.Acked++
	return true
}

// Pending reports whether a command is waiting for acknowledgement.
func (t *Tracker) Pending(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, exists := t.pending[key]
	return exists
}

// PendingCount returns the number of commands waiting for acknowledgement.
func (t *Tracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Remaining returns the time left before a pending command times out, or 0.
func (t *Tracker) Remaining(key string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, exists := t.pending[key]
	if !exists {
		return 0
	}
	remaining := t.timeout - time.Since(p.startedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear drops every pending command without running timeout callbacks.
// Used when the link goes down.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearLocked()
}

// Stop clears the tracker and rejects further commands.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.clearLocked()
}

// Stats returns a snapshot of the tracker counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

func (t *Tracker) clearLocked() {
	for key, p := range t.pending {
		p.timer.Stop()
		delete(t.pending, key)
	}
}

// expire is called when a command's timer fires.
func (t *Tracker) expire(key string, p *pending) {
	t.mu.Lock()

	// The command may have been acknowledged, cleared or restarted while
	// the timer was firing.
	if t.pending[key] != p {
		t.mu.Unlock()
		return
	}
	delete(t.pending, key)
	t.stats.TimedOut++
	onTimeout := p.onTimeout

	t.mu.Unlock()

	if onTimeout != nil {
		onTimeout()
	}
}

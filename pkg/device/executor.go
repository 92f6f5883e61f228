package device

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the executor queue capacity used when none is set.
const DefaultQueueSize = 64

// Executor errors.
var (
	ErrExecutorStopped = errors.New("executor stopped")
	ErrExecutorRunning = errors.New("executor already running")
	ErrQueueFull       = errors.New("executor queue full")
)

// Executor runs queued functions one at a time on a single goroutine.
type Executor struct {
	queue    chan func()
	done     chan struct{}
	running  atomic.Bool
	stopOnce sync.Once
}

// NewExecutor creates an executor. A non-positive size selects
// DefaultQueueSize.
func NewExecutor(queueSize int) *Executor {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Executor{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run executes queued functions until ctx is cancelled. It returns the
// context error, or ErrExecutorRunning if Run was already called.
// Functions still queued when Run returns are discarded.
func (e *Executor) Run(ctx context.Context) error {
	if e.running.Swap(true) {
		return ErrExecutorRunning
	}
	defer e.stopOnce.Do(func() { close(e.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-e.queue:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (e *Executor) Done() <-chan struct{} {
	return e.done
}

// Post queues fn without waiting. It returns false if the executor has
// stopped or its queue is full.
func (e *Executor) Post(fn func()) bool {
	return e.enqueue(fn) == nil
}

// Call queues fn and waits for it to run. It must not be called from the
// executor goroutine.
func (e *Executor) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := e.enqueue(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-e.done:
		// Run may have picked fn up just before stopping.
		select {
		case <-finished:
			return nil
		default:
			return ErrExecutorStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Executor) enqueue(fn func()) error {
	select {
	case <-e.done:
		return ErrExecutorStopped
	default:
	}

	select {
	case e.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

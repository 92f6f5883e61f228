package device

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startExecutor(t *testing.T, size int) (*Executor, context.CancelFunc) {
	t.Helper()
	exec := NewExecutor(size)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = exec.Run(ctx) }()
	t.Cleanup(cancel)
	return exec, cancel
}

func TestExecutorRunsInOrder(t *testing.T) {
	exec, _ := startExecutor(t, 0)

	var order []int
	for i := 0; i < 10; i++ {
		i := i
		require.True(t, exec.Post(func() { order = append(order, i) }))
	}
	require.NoError(t, exec.Call(context.Background(), func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestExecutorCall(t *testing.T) {
	exec, _ := startExecutor(t, 0)

	var ran atomic.Bool
	err := exec.Call(context.Background(), func() { ran.Store(true) })

	require.NoError(t, err)
	assert.True(t, ran.Load())
}

func TestExecutorCallContextCancelled(t *testing.T) {
	exec, _ := startExecutor(t, 0)

	release := make(chan struct{})
	defer close(release)
	require.True(t, exec.Post(func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := exec.Call(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExecutorStopped(t *testing.T) {
	exec, cancel := startExecutor(t, 0)
	cancel()

	select {
	case <-exec.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not stop")
	}

	assert.False(t, exec.Post(func() {}))
	assert.ErrorIs(t, exec.Call(context.Background(), func() {}), ErrExecutorStopped)
}

func TestExecutorRunTwice(t *testing.T) {
	exec, _ := startExecutor(t, 0)
	require.NoError(t, exec.Call(context.Background(), func() {}))

	assert.ErrorIs(t, exec.Run(context.Background()), ErrExecutorRunning)
}

func TestExecutorQueueFull(t *testing.T) {
	exec := NewExecutor(1)

	assert.True(t, exec.Post(func() {}))
	assert.False(t, exec.Post(func() {}))
	assert.ErrorIs(t, exec.Call(context.Background(), func() {}), ErrQueueFull)
}

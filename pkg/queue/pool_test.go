package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func TestPoolRegisterAndCancelSession(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	// Register a session
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("session-1", cancel)

	// Cancel should succeed for registered session
	assert.True(t, pool.CancelSession("session-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown session
	assert.False(t, pool.CancelSession("unknown"))
}

func TestPoolUnregisterSession(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("session-1", cancel)

	// Should find it
	assert.True(t, pool.CancelSession("session-1"))

	// Unregister
	pool.UnregisterSession("session-1")

	// Should not find it anymore
	assert.False(t, pool.CancelSession("session-1"))
}

func TestPoolGetActiveSessionIDs(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveSessionIDs()
	assert.Empty(t, ids)

	// Register sessions
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterSession("session-a", cancel1)
	pool.RegisterSession("session-b", cancel2)

	ids = pool.getActiveSessionIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "session-a")
	assert.Contains(t, ids, "session-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:         make(chan struct{}),
		activeSessions: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestPoolHealthReportsQueueState(t *testing.T) {
	h := newQueueHarness(t)
	h.enqueue(t, "collect service logs")
	h.enqueue(t, "diff the staging config")

	p := h.pool()
	health := p.Health()

	assert.Equal(t, "pod-test", health.PodID)
	assert.True(t, health.DBReachable)
	assert.Empty(t, health.DBError)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, 0, health.ActiveSessions)
	assert.Equal(t, h.cfg.MaxConcurrentSessions, health.MaxConcurrent)

	// A pool that never started has no workers and is not healthy.
	assert.Equal(t, 0, health.TotalWorkers)
	assert.False(t, health.IsHealthy)
}

func TestPoolRunsQueuedSessionsToCompletion(t *testing.T) {
	h := newQueueHarness(t)
	ids := []string{
		h.enqueue(t, "lint the manifests").ID,
		h.enqueue(t, "run the smoke checks").ID,
		h.enqueue(t, "update the changelog").ID,
	}

	p := h.pool()
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool {
		for _, id := range ids {
			if !h.stateIs(id, models.StateCompleted)() {
				return false
			}
		}
		return true
	}, 5*time.Second, 10*time.Millisecond, "all queued sessions should complete")

	assert.ElementsMatch(t, ids, h.runner.ranSessions())

	health := p.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, h.cfg.WorkerCount, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)

	processed := 0
	for _, ws := range health.WorkerStats {
		processed += ws.SessionsProcessed
	}
	assert.Equal(t, len(ids), processed)
}

func TestPoolStartTwiceIsNoOp(t *testing.T) {
	h := newQueueHarness(t)
	p := h.pool()

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.NoError(t, p.Start(context.Background()))
	assert.Len(t, p.workers, h.cfg.WorkerCount, "duplicate Start must not spawn more workers")
}

func TestPoolCancelRunningSession(t *testing.T) {
	h := newQueueHarness(t)
	h.runner.block = true
	sess := h.enqueue(t, "watch the deployment rollout")

	p := h.pool()
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool {
		return len(h.runner.ranSessions()) == 1
	}, 5*time.Second, 10*time.Millisecond, "a worker should pick up the session")

	require.True(t, p.CancelSession(sess.ID), "running session should be cancellable")

	require.Eventually(t, h.stateIs(sess.ID, models.StateCancelled),
		5*time.Second, 10*time.Millisecond, "cancelled session should reach the cancelled state")

	require.Eventually(t, func() bool {
		return !p.isActive(sess.ID)
	}, 5*time.Second, 10*time.Millisecond, "worker should unregister the session")
	assert.False(t, p.CancelSession(sess.ID), "finished session is no longer cancellable")
}

package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// newRetryHarness builds an executor with just enough wiring to exercise
// executeWithRetry, with near-instant backoff.
func newRetryHarness(t *testing.T, tool tools.Tool) (*Executor, *events.Subscription, *run) {
	t.Helper()

	hub := events.NewHub(64)
	t.Cleanup(hub.Close)

	registry := tools.NewRegistry()
	require.NoError(t, registry.RegisterBuiltin(tool))

	e := New(Options{Tools: registry, Publisher: events.NewPublisher(hub)})
	e.backoff = func(int) time.Duration { return time.Millisecond }

	sub := hub.Subscribe("retry-sess")
	t.Cleanup(sub.Close)

	r := &run{session: &ent.AgentSession{ID: "retry-sess"}}
	return e, sub, r
}

// drainEvents takes exactly n events off the subscription.
func drainEvents(t *testing.T, sub *events.Subscription, n int) []models.AgentEvent {
	t.Helper()
	out := make([]models.AgentEvent, 0, n)
	deadline := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				t.Fatalf("stream closed after %d of %d events", len(out), n)
			}
			out = append(out, ev)
		case <-deadline:
			t.Fatalf("expected %d events, got %v", n, typesOf(out))
		}
	}
	return out
}

func TestExecuteWithRetryRecoversTransportFailure(t *testing.T) {
	flaky := &scriptedTool{name: "flaky", run: func(_ context.Context, invocation int, _ map[string]any) (*models.ToolResult, error) {
		if invocation < 3 {
			return nil, errors.New("dial tcp 127.0.0.1:8811: connect: connection refused")
		}
		return &models.ToolResult{Success: true, Data: "third time lucky"}, nil
	}}
	e, sub, r := newRetryHarness(t, flaky)

	step := &models.PlanStep{ID: 1}
	call := models.ToolCall{ID: "c1", ToolName: "flaky", Parameters: map[string]any{}}
	result, err := e.executeWithRetry(context.Background(), r, step, call, &tools.AgentContext{SessionID: r.session.ID})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 3, flaky.callCount())

	evs := drainEvents(t, sub, 6)
	assert.Equal(t, []models.EventType{
		models.EventToolCalled, models.EventToolResult,
		models.EventToolCalled, models.EventToolResult,
		models.EventToolCalled, models.EventToolResult,
	}, typesOf(evs))

	for i, wantAttempt := range []int{1, 2, 3} {
		payload := evs[i*2].Data.(events.ToolCalledPayload)
		assert.Equal(t, wantAttempt, payload.Attempt)
		assert.Equal(t, "c1", payload.CallID)
	}
	assert.Contains(t, evs[1].Data.(events.ToolResultPayload).Error, "connection refused")
	assert.True(t, evs[5].Data.(events.ToolResultPayload).Success)
}

func TestExecuteWithRetryExhaustsAttempts(t *testing.T) {
	down := &scriptedTool{name: "down", run: func(context.Context, int, map[string]any) (*models.ToolResult, error) {
		return nil, errors.New("read tcp: connection reset by peer")
	}}
	e, sub, r := newRetryHarness(t, down)

	step := &models.PlanStep{ID: 1}
	call := models.ToolCall{ID: "c2", ToolName: "down", Parameters: map[string]any{}}
	result, err := e.executeWithRetry(context.Background(), r, step, call, &tools.AgentContext{SessionID: r.session.ID})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, maxAttempts, down.callCount())
	assert.Equal(t, KindTransport, ClassifyError(err))
	drainEvents(t, sub, 6)
}

func TestExecuteWithRetryNeverRetriesValidation(t *testing.T) {
	echo := okTool("echo", "hi")
	e, sub, r := newRetryHarness(t, echo)

	step := &models.PlanStep{ID: 1}
	call := models.ToolCall{ID: "c3", ToolName: "missing", Parameters: map[string]any{}}
	_, err := e.executeWithRetry(context.Background(), r, step, call, &tools.AgentContext{SessionID: r.session.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, tools.ErrToolNotFound))
	assert.Equal(t, KindValidation, ClassifyError(err))
	assert.Zero(t, echo.callCount())

	evs := drainEvents(t, sub, 2)
	assert.Equal(t, []models.EventType{models.EventToolCalled, models.EventToolResult}, typesOf(evs))
}

func TestExecuteWithRetryStopsOnCancelDuringBackoff(t *testing.T) {
	down := &scriptedTool{name: "down", run: func(context.Context, int, map[string]any) (*models.ToolResult, error) {
		return nil, errors.New("write: broken pipe")
	}}
	e, _, r := newRetryHarness(t, down)
	e.backoff = func(int) time.Duration { return 10 * time.Second }

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(50*time.Millisecond, cancel)
	defer timer.Stop()

	step := &models.PlanStep{ID: 1}
	call := models.ToolCall{ID: "c4", ToolName: "down", Parameters: map[string]any{}}
	start := time.Now()
	_, err := e.executeWithRetry(ctx, r, step, call, &tools.AgentContext{SessionID: r.session.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, down.callCount())
	assert.Less(t, time.Since(start), 5*time.Second, "backoff wait should end with the context")
}

func TestBackoffDelayWindows(t *testing.T) {
	tests := []struct {
		attempt  int
		min, max time.Duration
	}{
		{1, 500 * time.Millisecond, 1 * time.Second},
		{2, 1 * time.Second, 2 * time.Second},
		{3, 2 * time.Second, 4 * time.Second},
		{4, 4 * time.Second, 8 * time.Second},
		{10, 15 * time.Second, 30 * time.Second}, // capped
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			d := backoffDelay(tt.attempt)
			assert.GreaterOrEqual(t, d, tt.min, "attempt %d", tt.attempt)
			assert.LessOrEqual(t, d, tt.max, "attempt %d", tt.attempt)
		}
	}
}

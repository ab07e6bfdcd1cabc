package executor

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// Retry schedule for transport-class tool failures.
const (
	// maxAttempts bounds invocations of one call, first try included.
	maxAttempts = 3

	// backoffBase is the wait window before the second attempt.
	backoffBase = 1 * time.Second

	// backoffCap bounds the window's growth.
	backoffCap = 30 * time.Second
)

// executeWithRetry invokes the tool up to maxAttempts times with jittered
// exponential backoff between attempts. Only transport and timeout failures
// retry; validation errors, tool-reported failures, and cancellation return
// immediately. Every attempt publishes tool_called before and tool_result
// after.
func (e *Executor) executeWithRetry(ctx context.Context, r *run, step *models.PlanStep, call models.ToolCall, agentCtx *tools.AgentContext) (*models.ToolResult, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		e.publisher.PublishToolCalled(r.session.ID, events.ToolCalledPayload{
			StepID:     step.ID,
			CallID:     call.ID,
			ToolName:   call.ToolName,
			Parameters: call.Parameters,
			Attempt:    attempt,
		})

		started := time.Now()
		result, err := e.invokeTool(ctx, call, agentCtx)

		payload := events.ToolResultPayload{
			StepID:     step.ID,
			CallID:     call.ID,
			ToolName:   call.ToolName,
			DurationMS: time.Since(started).Milliseconds(),
		}
		if err != nil {
			payload.Error = err.Error()
		} else {
			payload.Success = result.Success
			payload.Error = result.Error
			payload.DurationMS = result.DurationMS
		}
		e.publisher.PublishToolResult(r.session.ID, payload)

		if err == nil {
			return result, nil
		}
		lastErr = err

		if !ClassifyError(err).Retryable() || attempt == maxAttempts {
			return nil, err
		}

		delay := e.backoff(attempt)
		slog.Warn("Tool call failed, retrying",
			"session_id", r.session.ID,
			"tool", call.ToolName,
			"attempt", attempt,
			"delay", delay,
			"error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

// backoffDelay returns the jittered wait after a failed attempt (1-based):
// base 1s doubling per attempt, capped at 30s, with the actual wait drawn
// from the upper half of the window.
func backoffDelay(attempt int) time.Duration {
	d := backoffBase
	for i := 1; i < attempt && d < backoffCap; i++ {
		d *= 2
	}
	if d > backoffCap {
		d = backoffCap
	}
	half := d / 2
	return half + time.Duration(rand.Int64N(int64(half)+1))
}

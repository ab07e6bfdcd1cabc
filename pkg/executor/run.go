package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/budget"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/metrics"
	"github.com/praxislabs/praxis/pkg/models"
)

// run carries one session's mutable state through the loop. The in-memory
// plan and message history are authoritative during execution; persistence
// failures are logged, never fatal.
type run struct {
	session   *ent.AgentSession
	state     models.SessionState
	plan      *models.Plan
	messages  []models.Message
	variables map[string]any
	budget    *budget.Budget
	started   time.Time
}

// projectPath returns the session's project path, or "" when unset.
func (r *run) projectPath() string {
	if r.session.ProjectPath != nil {
		return *r.session.ProjectPath
	}
	return ""
}

// summary returns the result of the last completed step, the closest thing
// a finished plan has to a final answer.
func (r *run) summary() string {
	if r.plan == nil {
		return ""
	}
	for i := len(r.plan.Steps) - 1; i >= 0; i-- {
		step := r.plan.Steps[i]
		if step.Status == models.StepCompleted && step.Result != "" {
			return step.Result
		}
	}
	return ""
}

// setState persists a non-terminal state transition and publishes it.
func (e *Executor) setState(ctx context.Context, r *run, to models.SessionState) {
	from := r.state
	if from == to {
		return
	}
	if err := e.sessions.TransitionState(ctx, r.session.ID, to); err != nil {
		slog.Error("Failed to transition session state",
			"session_id", r.session.ID, "to", to, "error", err)
	}
	r.state = to
	e.publisher.PublishStateChange(r.session.ID, from, to)
}

// finishState moves the session into a terminal state, stamping ended_at
// exactly once, and publishes the transition.
func (e *Executor) finishState(ctx context.Context, r *run, to models.SessionState, errMsg string) {
	from := r.state
	if err := e.sessions.FinishSession(ctx, r.session.ID, to, errMsg); err != nil {
		slog.Error("Failed to finish session",
			"session_id", r.session.ID, "state", to, "error", err)
	}
	r.state = to
	e.publisher.PublishStateChange(r.session.ID, from, to)
	metrics.SessionsTotal.WithLabelValues(string(to)).Inc()
}

// publishTerminal builds, publishes, and returns the session's terminal
// event, so callers hand back exactly what subscribers saw.
func (e *Executor) publishTerminal(sessionID string, t models.EventType, data any) models.AgentEvent {
	ev := models.AgentEvent{
		Type:      t,
		SessionID: sessionID,
		Timestamp: time.Now(),
		Data:      data,
	}
	e.publisher.Hub().Publish(ev)
	return ev
}

func (e *Executor) finishCompleted(ctx context.Context, r *run) models.AgentEvent {
	e.finishState(ctx, r, models.StateCompleted, "")
	return e.publishTerminal(r.session.ID, models.EventCompleted, events.CompletedPayload{
		Summary:    r.summary(),
		DurationMS: time.Since(r.started).Milliseconds(),
	})
}

func (e *Executor) finishError(ctx context.Context, r *run, message string) models.AgentEvent {
	e.finishState(ctx, r, models.StateFailed, message)
	return e.publishTerminal(r.session.ID, models.EventError, events.ErrorPayload{Message: message})
}

func (e *Executor) finishCancelled(ctx context.Context, r *run, reason string) models.AgentEvent {
	e.sweepPendingSteps(r, reason)
	e.finishState(ctx, r, models.StateCancelled, reason)
	return e.publishTerminal(r.session.ID, models.EventCancelled, events.CancelledPayload{Reason: reason})
}

// sweepPendingSteps marks steps a cancelled run never reached as skipped.
// They never started, so no step events are published; subscribers only
// hear the terminal cancellation.
func (e *Executor) sweepPendingSteps(r *run, reason string) {
	if r.plan == nil {
		return
	}
	for _, step := range r.plan.Steps {
		if step.Status != models.StepPending {
			continue
		}
		step.Status = models.StepSkipped
		step.Error = reason
		if err := e.steps.MarkStepSkipped(context.Background(), r.session.ID, step.ID, reason); err != nil {
			slog.Error("Failed to mark unreached step skipped",
				"session_id", r.session.ID, "step_id", step.ID, "error", err)
		}
	}
}

// finishKilled ends a run the kill switch stopped: the trigger event
// precedes the terminal cancelled event.
func (e *Executor) finishKilled(ctx context.Context, r *run, reason string) models.AgentEvent {
	e.publisher.PublishKillSwitchTriggered(r.session.ID, reason)
	return e.finishCancelled(ctx, r, reason)
}

// finishAborted ends a run whose context was cancelled mid-step, either by
// the kill switch or by a shutdown of the hosting worker.
func (e *Executor) finishAborted(ctx context.Context, r *run) models.AgentEvent {
	if triggered, reason := e.kill.Triggered(); triggered {
		return e.finishKilled(ctx, r, reason)
	}
	return e.finishCancelled(ctx, r, "run cancelled")
}

// startStep marks a step running and announces it.
func (e *Executor) startStep(ctx context.Context, r *run, step *models.PlanStep) {
	step.Status = models.StepRunning
	if err := e.steps.MarkStepRunning(ctx, r.session.ID, step.ID); err != nil {
		slog.Error("Failed to mark step running",
			"session_id", r.session.ID, "step_id", step.ID, "error", err)
	}
	e.publisher.PublishStepStarted(r.session.ID, step)
}

// completeStep records a successful step and its result.
func (e *Executor) completeStep(ctx context.Context, r *run, step *models.PlanStep, result string, elapsed time.Duration) {
	step.Status = models.StepCompleted
	step.Result = result
	if err := e.steps.MarkStepCompleted(ctx, r.session.ID, step.ID, result, elapsed); err != nil {
		slog.Error("Failed to mark step completed",
			"session_id", r.session.ID, "step_id", step.ID, "error", err)
	}
	e.publisher.PublishStepCompleted(r.session.ID, step)
}

// failStep records a failed step. The plan keeps going; steps depending on
// this one become unreachable and surface at the loop boundary.
func (e *Executor) failStep(ctx context.Context, r *run, step *models.PlanStep, errMsg string, elapsed time.Duration) {
	step.Status = models.StepFailed
	step.Error = errMsg
	if err := e.steps.MarkStepFailed(ctx, r.session.ID, step.ID, errMsg, elapsed); err != nil {
		slog.Error("Failed to mark step failed",
			"session_id", r.session.ID, "step_id", step.ID, "error", err)
	}
	e.publisher.PublishStepCompleted(r.session.ID, step)
}

// skipStep records a step that was never executed, without failing the plan.
func (e *Executor) skipStep(ctx context.Context, r *run, step *models.PlanStep, reason string) {
	step.Status = models.StepSkipped
	step.Error = reason
	if err := e.steps.MarkStepSkipped(ctx, r.session.ID, step.ID, reason); err != nil {
		slog.Error("Failed to mark step skipped",
			"session_id", r.session.ID, "step_id", step.ID, "error", err)
	}
	e.publisher.PublishStepCompleted(r.session.ID, step)
}

// consumeUsage feeds model token counts into the budget and the session's
// persisted counters.
func (e *Executor) consumeUsage(ctx context.Context, r *run, usage llm.Usage) {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return
	}
	r.budget.Consume(usage.InputTokens, usage.OutputTokens)
	if err := e.sessions.AddUsage(ctx, r.session.ID, usage.InputTokens, usage.OutputTokens, 0); err != nil {
		slog.Error("Failed to record token usage",
			"session_id", r.session.ID, "error", err)
	}
	if r.budget.IsWarning() {
		usedIn, usedOut := r.budget.Used()
		slog.Warn("Token budget nearing its limit",
			"session_id", r.session.ID,
			"used", usedIn+usedOut,
			"max_total", r.budget.MaxTotal())
	}
}

// runReasoningStep answers a tool-less step by asking the chat model
// directly, with the conversation so far as context. A non-nil return
// aborts the run; model failures only fail the step.
func (e *Executor) runReasoningStep(ctx context.Context, r *run, step *models.PlanStep) error {
	started := time.Now()

	prompt := make([]models.Message, len(r.messages), len(r.messages)+1)
	copy(prompt, r.messages)
	prompt = append(prompt, models.Message{Role: models.RoleUser, Content: step.Description})

	req := llm.Request{Messages: prompt}
	resp, err := e.model.Chat(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			e.failStep(ctx, r, step, "cancelled", time.Since(started))
			return ctx.Err()
		}
		e.failStep(ctx, r, step, fmt.Sprintf("chat model: %v", err), time.Since(started))
		return nil
	}

	e.consumeUsage(ctx, r, llm.EnsureUsage(req, resp))
	e.completeStep(ctx, r, step, resp.Content, time.Since(started))
	r.messages = append(r.messages, models.Message{Role: models.RoleAssistant, Content: resp.Content})
	return nil
}

// Package executor drives agent sessions. A run plans the task, walks the
// step graph under the safety envelope (risk classification, approval gate,
// kill switch, token budget), and reduces every outcome to exactly one
// terminal event: completed, cancelled, or error.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/budget"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/masking"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
	"github.com/praxislabs/praxis/pkg/tools"
)

// killSwitchPollInterval is how often a run re-checks the switch while
// blocked. The switch is a mutex-guarded bool, so polling is cheap.
const killSwitchPollInterval = 100 * time.Millisecond

// Planner produces a step plan for a task. Implemented by planner.Planner.
type Planner interface {
	CreatePlan(ctx context.Context, task string, catalog []models.ToolDefinition, history []models.Message) (*models.Plan, llm.Usage, error)
}

// ToolRunner validates and dispatches tool calls. Implemented by
// tools.Registry.
type ToolRunner interface {
	Definitions() []models.ToolDefinition
	Execute(ctx context.Context, call models.ToolCall, agentCtx *tools.AgentContext) (*models.ToolResult, error)
}

// ActionClassifier assigns a risk verdict to one tool invocation.
// Implemented by safety.Classifier.
type ActionClassifier interface {
	Classify(ctx context.Context, toolName string, params map[string]any, projectPath string) models.ActionClassification
}

// ApprovalGate blocks gated actions on a human decision. Implemented by
// approval.Manager.
type ApprovalGate interface {
	StartSession(sessionID string)
	EndSession(sessionID string)
	RequestApproval(ctx context.Context, cls models.ActionClassification, stepID int, sessionID string, timeout time.Duration) (models.ApprovalResult, error)
}

// AutonomyView reports per-project autonomy facts. Implemented by
// autonomy.Service.
type AutonomyView interface {
	IsYoloActive(projectPath string) bool
}

// Options bundles the collaborators an Executor needs. All fields are
// required; Config falls back to defaults when nil, Redactor to the
// built-in pattern set.
type Options struct {
	Model      llm.ChatModel
	Planner    Planner
	Tools      ToolRunner
	Classifier ActionClassifier
	Approvals  ApprovalGate
	Autonomy   AutonomyView
	Kill       *killswitch.Switch
	Publisher  *events.Publisher
	Sessions   *services.SessionService
	Steps      *services.StepService
	Audit      *services.AuditService
	Config     *config.AgentConfig
	Redactor   *masking.Masker
}

// Executor owns the run loop. One Executor serves many concurrent sessions;
// per-run state lives on the stack of RunSession.
type Executor struct {
	model      llm.ChatModel
	planner    Planner
	tools      ToolRunner
	classifier ActionClassifier
	approvals  ApprovalGate
	autonomy   AutonomyView
	kill       *killswitch.Switch
	publisher  *events.Publisher
	sessions   *services.SessionService
	steps      *services.StepService
	audit      *services.AuditService
	cfg        *config.AgentConfig
	redactor   *masking.Masker

	// backoff computes the wait before a tool retry attempt.
	backoff func(attempt int) time.Duration
}

// New creates an Executor from the given collaborators.
func New(opts Options) *Executor {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultAgentConfig()
	}
	redactor := opts.Redactor
	if redactor == nil {
		redactor = masking.New()
	}
	return &Executor{
		model:      opts.Model,
		planner:    opts.Planner,
		tools:      opts.Tools,
		classifier: opts.Classifier,
		approvals:  opts.Approvals,
		autonomy:   opts.Autonomy,
		kill:       opts.Kill,
		publisher:  opts.Publisher,
		sessions:   opts.Sessions,
		steps:      opts.Steps,
		audit:      opts.Audit,
		cfg:        cfg,
		redactor:   redactor,
		backoff:    backoffDelay,
	}
}

// Run creates a session for the task and drives it to its terminal event.
// The returned event is the same one delivered to subscribers. An error is
// returned only when the session could not be created at all.
func (e *Executor) Run(ctx context.Context, req models.CreateSessionRequest) (models.AgentEvent, error) {
	sess, err := e.sessions.CreateSession(ctx, req)
	if err != nil {
		return models.AgentEvent{}, fmt.Errorf("create session: %w", err)
	}
	return e.RunSession(ctx, sess), nil
}

// RunSession drives an existing session (freshly created, or claimed from
// the queue) to its terminal event. Every exit path produces exactly one
// terminal event, and the approval session always ends, even when the run
// aborts. A tripped kill switch stays tripped across session teardown;
// only an explicit Reset re-arms the runtime.
func (e *Executor) RunSession(ctx context.Context, sess *ent.AgentSession) models.AgentEvent {
	r := &run{
		session:   sess,
		state:     models.SessionState(sess.State),
		budget:    budget.New(e.cfg.TokenBudget, budget.DefaultWarnFraction),
		started:   time.Now(),
		messages:  []models.Message{{Role: models.RoleUser, Content: sess.Task}},
		variables: map[string]any{},
	}

	e.approvals.StartSession(sess.ID)
	defer e.approvals.EndSession(sess.ID)

	// A tripped switch cancels the run context so every blocking point
	// (model call, tool, approval wait, retry backoff) returns promptly.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go e.watchKillSwitch(runCtx, cancel)

	slog.Info("Session run starting",
		"session_id", sess.ID,
		"task", sess.Task)

	ev := e.runLoop(runCtx, r)

	slog.Info("Session run finished",
		"session_id", sess.ID,
		"outcome", ev.Type,
		"duration", time.Since(r.started).Round(time.Millisecond))
	return ev
}

// Cancel trips the kill switch. Every running session observes it at its
// next blocking point or loop boundary and terminates as cancelled. The
// switch stays tripped, blocking new work, until it is explicitly reset.
func (e *Executor) Cancel(reason string) {
	e.kill.Trigger(reason)
}

// Events opens a subscription to one session's event stream. The caller
// owns the subscription and must close it.
func (e *Executor) Events(sessionID string) *events.Subscription {
	return e.publisher.Hub().Subscribe(sessionID)
}

// runLoop is the plan-and-execute loop. It returns the terminal event for
// the session; the caller handles teardown.
func (e *Executor) runLoop(ctx context.Context, r *run) models.AgentEvent {
	sid := r.session.ID

	// A session claimed in the window between a kill-switch trip and the
	// workers noticing must not reach the model at all.
	if triggered, reason := e.kill.Triggered(); triggered {
		return e.finishKilled(ctx, r, reason)
	}

	e.setState(ctx, r, models.StatePlanning)
	plan, usage, err := e.planner.CreatePlan(ctx, r.session.Task, e.tools.Definitions(), nil)
	if err != nil {
		if ctx.Err() != nil {
			return e.finishAborted(ctx, r)
		}
		return e.finishError(ctx, r, fmt.Sprintf("planning failed: %v", err))
	}
	e.consumeUsage(ctx, r, usage)
	r.plan = plan

	if err := e.steps.SavePlan(ctx, sid, plan); err != nil {
		slog.Error("Failed to persist plan", "session_id", sid, "error", err)
	}
	if plan.Overview != "" {
		if err := e.sessions.SetPlanOverview(ctx, sid, plan.Overview); err != nil {
			slog.Error("Failed to store plan overview", "session_id", sid, "error", err)
		}
	}
	e.publisher.PublishPlanCreated(sid, plan)
	e.setState(ctx, r, models.StateExecuting)

	for iteration := 0; iteration < e.cfg.MaxIterations; iteration++ {
		if triggered, reason := e.kill.Triggered(); triggered {
			return e.finishKilled(ctx, r, reason)
		}
		if elapsed := time.Since(r.started); elapsed > e.cfg.MaxDuration.Duration() {
			return e.finishError(ctx, r, fmt.Sprintf("session exceeded the %s time limit", e.cfg.MaxDuration))
		}
		if !r.budget.CanProceed() {
			usedIn, usedOut := r.budget.Used()
			e.publisher.PublishBudgetExceeded(sid, usedIn, usedOut, r.budget.MaxTotal())
			return e.finishError(ctx, r, fmt.Sprintf("%s (%d of %d tokens)", ErrBudgetExceeded, usedIn+usedOut, r.budget.MaxTotal()))
		}

		step := r.plan.NextRunnable()
		if step == nil {
			if !r.plan.IsComplete() {
				return e.finishError(ctx, r, blockedMessage(r.plan))
			}
			if r.plan.HasFailed() {
				return e.finishError(ctx, r, "plan finished with failed steps")
			}
			return e.finishCompleted(ctx, r)
		}

		e.startStep(ctx, r, step)

		if step.ToolName != nil {
			err = e.runToolStep(ctx, r, step)
		} else {
			err = e.runReasoningStep(ctx, r, step)
		}
		if err != nil {
			return e.finishAborted(ctx, r)
		}

		// Second poll so a trigger during the step takes effect before the
		// next one starts.
		if triggered, reason := e.kill.Triggered(); triggered {
			return e.finishKilled(ctx, r, reason)
		}
	}

	// A plan that used every iteration may have finished on the last pass.
	if r.plan.NextRunnable() == nil && r.plan.IsComplete() && !r.plan.HasFailed() {
		return e.finishCompleted(ctx, r)
	}
	return e.finishError(ctx, r, fmt.Sprintf("iteration limit (%d) reached", e.cfg.MaxIterations))
}

// watchKillSwitch cancels the run context when the switch trips. Exits when
// the run context ends.
func (e *Executor) watchKillSwitch(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(killSwitchPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if triggered, _ := e.kill.Triggered(); triggered {
				cancel()
				return
			}
		}
	}
}

// blockedMessage names the steps that can no longer run because a
// dependency failed or was skipped.
func blockedMessage(plan *models.Plan) string {
	var blocked []int
	for _, step := range plan.Steps {
		if step.Status == models.StepPending {
			blocked = append(blocked, step.ID)
		}
	}
	return fmt.Sprintf("no runnable steps remain: steps %v blocked by unmet dependencies", blocked)
}

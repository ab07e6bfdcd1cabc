package services

import (
	"context"
	"fmt"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/pkg/models"
)

// StepService persists plan steps and their status transitions.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService.
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// SavePlan persists all steps of a freshly created plan in one transaction.
// Step statuses start as pending regardless of what the plan carries.
func (s *StepService) SavePlan(ctx context.Context, sessionID string, plan *models.Plan) error {
	if sessionID == "" {
		return NewValidationError("session_id", "required")
	}
	if plan == nil || len(plan.Steps) == 0 {
		return NewValidationError("plan", "must contain at least one step")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.AgentStepCreate, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		builder := tx.AgentStep.Create().
			SetSessionID(sessionID).
			SetStepID(step.ID).
			SetDescription(step.Description).
			SetStatus(agentstep.StatusPending)
		if step.ToolName != nil {
			builder.SetToolName(*step.ToolName)
		}
		if len(step.Params) > 0 {
			builder.SetParams(step.Params)
		}
		if len(step.Dependencies) > 0 {
			builder.SetDependencies(step.Dependencies)
		}
		builders = append(builders, builder)
	}

	if err := tx.AgentStep.CreateBulk(builders...).Exec(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to save plan steps: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}

// ListSteps returns a session's steps in plan order.
func (s *StepService) ListSteps(ctx context.Context, sessionID string) ([]*ent.AgentStep, error) {
	steps, err := s.client.AgentStep.Query().
		Where(agentstep.SessionIDEQ(sessionID)).
		Order(ent.Asc(agentstep.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// MarkStepRunning records the start of a step's execution.
func (s *StepService) MarkStepRunning(ctx context.Context, sessionID string, stepID int) error {
	return s.updateStep(sessionID, stepID, func(u *ent.AgentStepUpdate) {
		u.SetStatus(agentstep.StatusRunning).SetStartedAt(time.Now())
	})
}

// MarkStepCompleted records a successful step with its result.
func (s *StepService) MarkStepCompleted(ctx context.Context, sessionID string, stepID int, result string, duration time.Duration) error {
	return s.updateStep(sessionID, stepID, func(u *ent.AgentStepUpdate) {
		u.SetStatus(agentstep.StatusCompleted).
			SetResult(result).
			SetCompletedAt(time.Now()).
			SetDurationMs(int(duration.Milliseconds()))
	})
}

// MarkStepFailed records a failed step with its error.
func (s *StepService) MarkStepFailed(ctx context.Context, sessionID string, stepID int, errorMessage string, duration time.Duration) error {
	return s.updateStep(sessionID, stepID, func(u *ent.AgentStepUpdate) {
		u.SetStatus(agentstep.StatusFailed).
			SetErrorMessage(errorMessage).
			SetCompletedAt(time.Now()).
			SetDurationMs(int(duration.Milliseconds()))
	})
}

// MarkStepSkipped records a step that was never executed, with the reason
// (approval timeout, cancellation, unreachable dependencies).
func (s *StepService) MarkStepSkipped(ctx context.Context, sessionID string, stepID int, reason string) error {
	return s.updateStep(sessionID, stepID, func(u *ent.AgentStepUpdate) {
		u.SetStatus(agentstep.StatusSkipped).SetErrorMessage(reason)
	})
}

func (s *StepService) updateStep(sessionID string, stepID int, apply func(*ent.AgentStepUpdate)) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentStep.Update().
		Where(
			agentstep.SessionIDEQ(sessionID),
			agentstep.StepIDEQ(stepID),
		)
	apply(update)

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update step %d: %w", stepID, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

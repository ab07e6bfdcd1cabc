// Package services implements the persistence layer over the generated Ent
// client: session and step records, the audit store, external server
// configuration, and autonomy settings.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/pkg/models"
)

// terminalStates are the frozen session states. Updates exclude them so a
// terminal transition can only happen once.
var terminalStates = []agentsession.State{
	agentsession.StateCompleted,
	agentsession.StateFailed,
	agentsession.StateCancelled,
}

// SessionService manages agent session lifecycle.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession persists a new session in the idle state.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.AgentSession, error) {
	if req.Task == "" {
		return nil, NewValidationError("task", "required")
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AgentSession.Create().
		SetID(req.SessionID).
		SetTask(req.Task).
		SetState(agentsession.StateIdle).
		SetCreatedAt(time.Now())

	if req.ProjectPath != "" {
		builder.SetProjectPath(req.ProjectPath)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, optionally with its steps in plan order.
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withSteps bool) (*ent.AgentSession, error) {
	query := s.client.AgentSession.Query().Where(agentsession.IDEQ(sessionID))

	if withSteps {
		query = query.WithSteps(func(q *ent.AgentStepQuery) {
			q.Order(ent.Asc(agentstep.FieldStepID))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination, newest first.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.AgentSession.Query()

	if filters.State != "" {
		query = query.Where(agentsession.StateEQ(agentsession.State(filters.State)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(agentsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(agentsession.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// TransitionState moves a session to a new state. Terminal states are
// frozen: updating an already-terminal session returns ErrTerminalState.
// A transition into a terminal state stamps ended_at exactly once.
func (s *SessionService) TransitionState(ctx context.Context, sessionID string, state models.SessionState) error {
	return s.transition(sessionID, state, "")
}

// FinishSession moves a session into a terminal state with an optional
// error message.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string, state models.SessionState, errorMessage string) error {
	if !state.IsTerminal() {
		return NewValidationError("state", fmt.Sprintf("%s is not a terminal state", state))
	}
	return s.transition(sessionID, state, errorMessage)
}

func (s *SessionService) transition(sessionID string, state models.SessionState, errorMessage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StateNotIn(terminalStates...),
		).
		SetState(agentsession.State(state))

	if state.IsTerminal() {
		update = update.SetEndedAt(time.Now())
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update session state: %w", err)
	}
	if count == 0 {
		exists, err := s.client.AgentSession.Query().
			Where(agentsession.IDEQ(sessionID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrTerminalState
	}
	return nil
}

// SetPlanOverview records the planner's one-line summary on the session.
func (s *SessionService) SetPlanOverview(ctx context.Context, sessionID, overview string) error {
	err := s.client.AgentSession.UpdateOneID(sessionID).
		SetPlanOverview(overview).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set plan overview: %w", err)
	}
	return nil
}

// AddUsage accumulates token and cost counters on the session.
func (s *SessionService) AddUsage(ctx context.Context, sessionID string, tokensIn, tokensOut int, cost float64) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AgentSession.UpdateOneID(sessionID).
		AddTokensIn(tokensIn).
		AddTokensOut(tokensOut).
		AddCost(cost).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to add session usage: %w", err)
	}
	return nil
}

// ClaimNextIdleSession atomically claims the oldest unclaimed idle session
// for the given worker. Returns (nil, nil) when nothing is claimable.
func (s *SessionService) ClaimNextIdleSession(ctx context.Context, podID string) (*ent.AgentSession, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.AgentSession.Query().
		Where(
			agentsession.StateEQ(agentsession.StateIdle),
			agentsession.PodIDIsNil(),
		).
		Order(ent.Asc(agentsession.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing pending
		}
		return nil, fmt.Errorf("failed to query idle session: %w", err)
	}

	// Conditional update: only claim if still unclaimed
	count, err := tx.AgentSession.Update().
		Where(
			agentsession.IDEQ(session.ID),
			agentsession.StateEQ(agentsession.StateIdle),
			agentsession.PodIDIsNil(),
		).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}
	if count == 0 {
		// Another worker won the race
		return nil, nil
	}

	session, err = tx.AgentSession.Get(claimCtx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return session, nil
}

// FindOrphanedSessions finds claimed, non-terminal sessions whose claim is
// older than the timeout. These belong to workers that died mid-run.
func (s *SessionService) FindOrphanedSessions(ctx context.Context, timeout time.Duration) ([]*ent.AgentSession, error) {
	threshold := time.Now().Add(-timeout)

	sessions, err := s.client.AgentSession.Query().
		Where(
			agentsession.StateNotIn(terminalStates...),
			agentsession.StartedAtNotNil(),
			agentsession.StartedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}
	return sessions, nil
}

// DeleteOldSessions hard-deletes terminal sessions that ended before the
// retention cutoff. Step rows cascade with their session.
func (s *SessionService) DeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AgentSession.Delete().
		Where(
			agentsession.EndedAtNotNil(),
			agentsession.EndedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old sessions: %w", err)
	}
	return count, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/pkg/models"
	testdb "github.com/praxislabs/praxis/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates idle session", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:   uuid.New().String(),
			Task:        "summarize the release notes",
			ProjectPath: "/home/dev/project",
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, session.ID)
		assert.Equal(t, req.Task, session.Task)
		assert.Equal(t, agentsession.StateIdle, session.State)
		require.NotNil(t, session.ProjectPath)
		assert.Equal(t, req.ProjectPath, *session.ProjectPath)
		assert.Nil(t, session.EndedAt)
		assert.Zero(t, session.TokensIn)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "do a thing"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("requires task", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{SessionID: id, Task: "first"})
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{SessionID: id, Task: "second"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSessionService_TransitionState(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
		require.NoError(t, err)
		return session.ID
	}

	t.Run("walks the happy path", func(t *testing.T) {
		id := newSession(t)
		for _, state := range []models.SessionState{
			models.StatePlanning, models.StateExecuting, models.StateCompleted,
		} {
			require.NoError(t, service.TransitionState(ctx, id, state))
		}

		session, err := service.GetSession(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StateCompleted, session.State)
		require.NotNil(t, session.EndedAt)
	})

	t.Run("terminal state is frozen", func(t *testing.T) {
		id := newSession(t)
		require.NoError(t, service.TransitionState(ctx, id, models.StateCancelled))

		session, err := service.GetSession(ctx, id, false)
		require.NoError(t, err)
		require.NotNil(t, session.EndedAt)
		endedAt := *session.EndedAt

		err = service.TransitionState(ctx, id, models.StateExecuting)
		assert.ErrorIs(t, err, ErrTerminalState)

		// ended_at was stamped exactly once.
		session, err = service.GetSession(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StateCancelled, session.State)
		assert.True(t, session.EndedAt.Equal(endedAt))
	})

	t.Run("unknown session", func(t *testing.T) {
		err := service.TransitionState(ctx, "missing", models.StatePlanning)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("finish records error message", func(t *testing.T) {
		id := newSession(t)
		require.NoError(t, service.FinishSession(ctx, id, models.StateFailed, "budget exceeded"))

		session, err := service.GetSession(ctx, id, false)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StateFailed, session.State)
		require.NotNil(t, session.ErrorMessage)
		assert.Equal(t, "budget exceeded", *session.ErrorMessage)
	})

	t.Run("finish rejects non-terminal state", func(t *testing.T) {
		id := newSession(t)
		err := service.FinishSession(ctx, id, models.StateExecuting, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "task"})
		require.NoError(t, err)
	}
	completed, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "done task"})
	require.NoError(t, err)
	require.NoError(t, service.TransitionState(ctx, completed.ID, models.StateCompleted))

	t.Run("paginates with total count", func(t *testing.T) {
		page, err := service.ListSessions(ctx, models.SessionFilters{Limit: 4})
		require.NoError(t, err)
		assert.Equal(t, 6, page.TotalCount)
		assert.Len(t, page.Sessions, 4)
		assert.Equal(t, 4, page.Limit)
	})

	t.Run("filters by state", func(t *testing.T) {
		page, err := service.ListSessions(ctx, models.SessionFilters{State: "completed"})
		require.NoError(t, err)
		require.Len(t, page.Sessions, 1)
		assert.Equal(t, completed.ID, page.Sessions[0].ID)
	})

	t.Run("filters by creation window", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		page, err := service.ListSessions(ctx, models.SessionFilters{CreatedAfter: &future})
		require.NoError(t, err)
		assert.Empty(t, page.Sessions)
	})
}

func TestSessionService_AddUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
	require.NoError(t, err)

	require.NoError(t, service.AddUsage(ctx, session.ID, 100, 40, 0.002))
	require.NoError(t, service.AddUsage(ctx, session.ID, 50, 10, 0.001))

	got, err := service.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 150, got.TokensIn)
	assert.Equal(t, 50, got.TokensOut)
	assert.InDelta(t, 0.003, got.Cost, 1e-9)
}

func TestSessionService_ClaimNextIdleSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("empty queue yields nil", func(t *testing.T) {
		session, err := service.ClaimNextIdleSession(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("claims oldest first and only once", func(t *testing.T) {
		first, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "first"})
		require.NoError(t, err)
		// created_at ordering needs distinct timestamps
		time.Sleep(5 * time.Millisecond)
		_, err = service.CreateSession(ctx, models.CreateSessionRequest{Task: "second"})
		require.NoError(t, err)

		claimed, err := service.ClaimNextIdleSession(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "worker-1", *claimed.PodID)
		require.NotNil(t, claimed.StartedAt)

		// The claimed session never comes back.
		second, err := service.ClaimNextIdleSession(ctx, "worker-2")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.NotEqual(t, claimed.ID, second.ID)

		third, err := service.ClaimNextIdleSession(ctx, "worker-3")
		require.NoError(t, err)
		assert.Nil(t, third)
	})
}

func TestSessionService_FindOrphanedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
	require.NoError(t, err)

	// Simulate a stale claim from a dead worker.
	err = client.AgentSession.UpdateOneID(session.ID).
		SetPodID("dead-worker").
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		SetState(agentsession.StateExecuting).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := service.FindOrphanedSessions(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, session.ID, orphans[0].ID)

	// Terminal sessions are never orphans.
	require.NoError(t, service.FinishSession(ctx, session.ID, models.StateFailed, "worker lost"))
	orphans, err = service.FindOrphanedSessions(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestSessionService_DeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	stepService := NewStepService(client.Client)
	ctx := context.Background()

	old, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "old"})
	require.NoError(t, err)
	plan := &models.Plan{Task: "old", Steps: []*models.PlanStep{{ID: 1, Description: "step"}}}
	require.NoError(t, stepService.SavePlan(ctx, old.ID, plan))
	require.NoError(t, client.AgentSession.UpdateOneID(old.ID).
		SetState(agentsession.StateCompleted).
		SetEndedAt(time.Now().Add(-40*24*time.Hour)).
		Exec(ctx))

	fresh, err := service.CreateSession(ctx, models.CreateSessionRequest{Task: "fresh"})
	require.NoError(t, err)
	require.NoError(t, service.TransitionState(ctx, fresh.ID, models.StateCompleted))

	deleted, err := service.DeleteOldSessions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = service.GetSession(ctx, old.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetSession(ctx, fresh.ID, false)
	assert.NoError(t, err)

	// Steps went with the session.
	steps, err := stepService.ListSteps(ctx, old.ID)
	require.NoError(t, err)
	assert.Empty(t, steps)

	_, err = service.DeleteOldSessions(ctx, 0)
	assert.Error(t, err)
}

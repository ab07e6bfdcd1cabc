package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/pkg/models"
	testdb "github.com/praxislabs/praxis/test/database"
)

func strPtr(s string) *string { return &s }

func samplePlan() *models.Plan {
	return &models.Plan{
		Task:     "research and summarize",
		Overview: "Search, then write.",
		Steps: []*models.PlanStep{
			{
				ID:          1,
				Description: "Search the web",
				ToolName:    strPtr("web_search"),
				Params:      map[string]any{"query": "golang generics"},
				Status:      models.StepPending,
			},
			{
				ID:           2,
				Description:  "Summarize results",
				Dependencies: []int{1},
				Status:       models.StepPending,
			},
		},
	}
}

func TestStepService_SavePlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewStepService(client.Client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
	require.NoError(t, err)

	require.NoError(t, service.SavePlan(ctx, session.ID, samplePlan()))

	steps, err := service.ListSteps(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	first := steps[0]
	assert.Equal(t, 1, first.StepID)
	assert.Equal(t, "Search the web", first.Description)
	require.NotNil(t, first.ToolName)
	assert.Equal(t, "web_search", *first.ToolName)
	assert.Equal(t, map[string]any{"query": "golang generics"}, first.Params)
	assert.Equal(t, agentstep.StatusPending, first.Status)

	second := steps[1]
	assert.Equal(t, 2, second.StepID)
	assert.Nil(t, second.ToolName)
	assert.Equal(t, []int{1}, second.Dependencies)

	t.Run("rejects duplicate plan", func(t *testing.T) {
		err := service.SavePlan(ctx, session.ID, samplePlan())
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown session", func(t *testing.T) {
		err := service.SavePlan(ctx, "missing", samplePlan())
		assert.Error(t, err)
	})

	t.Run("rejects empty plan", func(t *testing.T) {
		err := service.SavePlan(ctx, session.ID, &models.Plan{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStepService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewStepService(client.Client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
	require.NoError(t, err)
	require.NoError(t, service.SavePlan(ctx, session.ID, samplePlan()))

	t.Run("running then completed", func(t *testing.T) {
		require.NoError(t, service.MarkStepRunning(ctx, session.ID, 1))

		steps, err := service.ListSteps(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentstep.StatusRunning, steps[0].Status)
		require.NotNil(t, steps[0].StartedAt)

		require.NoError(t, service.MarkStepCompleted(ctx, session.ID, 1, "3 results found", 1500*time.Millisecond))

		steps, err = service.ListSteps(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentstep.StatusCompleted, steps[0].Status)
		require.NotNil(t, steps[0].Result)
		assert.Equal(t, "3 results found", *steps[0].Result)
		require.NotNil(t, steps[0].DurationMs)
		assert.Equal(t, 1500, *steps[0].DurationMs)
		require.NotNil(t, steps[0].CompletedAt)
	})

	t.Run("failed with error", func(t *testing.T) {
		require.NoError(t, service.MarkStepFailed(ctx, session.ID, 2, "tool crashed", 80*time.Millisecond))

		steps, err := service.ListSteps(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentstep.StatusFailed, steps[1].Status)
		require.NotNil(t, steps[1].ErrorMessage)
		assert.Equal(t, "tool crashed", *steps[1].ErrorMessage)
	})

	t.Run("skipped with reason", func(t *testing.T) {
		other, err := sessions.CreateSession(ctx, models.CreateSessionRequest{Task: "other"})
		require.NoError(t, err)
		require.NoError(t, service.SavePlan(ctx, other.ID, samplePlan()))

		require.NoError(t, service.MarkStepSkipped(ctx, other.ID, 1, "approval timed out"))

		steps, err := service.ListSteps(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, agentstep.StatusSkipped, steps[0].Status)
		require.NotNil(t, steps[0].ErrorMessage)
		assert.Equal(t, "approval timed out", *steps[0].ErrorMessage)
	})

	t.Run("unknown step", func(t *testing.T) {
		err := service.MarkStepRunning(ctx, session.ID, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_GetSessionWithSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewStepService(client.Client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{Task: "t"})
	require.NoError(t, err)
	require.NoError(t, service.SavePlan(ctx, session.ID, samplePlan()))

	got, err := sessions.GetSession(ctx, session.ID, true)
	require.NoError(t, err)
	steps, err := got.Edges.StepsOrErr()
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].StepID)
	assert.Equal(t, 2, steps[1].StepID)
}

package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/pkg/config"
)

func insertRunningStep(t *testing.T, client *ent.Client, sessionID string, stepID int) {
	t.Helper()

	_, err := client.AgentStep.Create().
		SetSessionID(sessionID).
		SetStepID(stepID).
		SetDescription("list the pods").
		SetStatus(agentstep.StatusRunning).
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	// Claimed two hours ago by a pod that no longer exists.
	stale := insertClaimedSession(t, h.client, "dead-pod", agentsession.StateExecuting, time.Now().Add(-2*time.Hour))
	insertRunningStep(t, h.client, stale.ID, 1)

	// Claimed just now; must survive the sweep.
	fresh := insertClaimedSession(t, h.client, "live-pod", agentsession.StateExecuting, time.Now())

	p := h.pool()
	require.NoError(t, p.detectAndRecoverOrphans(ctx))

	row, err := h.client.AgentSession.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StateFailed, row.State)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "orphaned: pod dead-pod")
	assert.NotNil(t, row.EndedAt)

	step, err := h.client.AgentStep.Query().
		Where(agentstep.SessionIDEQ(stale.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentstep.StatusFailed, step.Status)
	require.NotNil(t, step.ErrorMessage)
	assert.Equal(t, "interrupted by worker failure", *step.ErrorMessage)

	freshRow, err := h.client.AgentSession.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StateExecuting, freshRow.State)

	health := p.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestDetectAndRecoverOrphansSkipsActiveSessions(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	// Stale by claim age, but still registered on this pod: a long approval
	// wait inside the session timeout must not be swept out from under us.
	sess := insertClaimedSession(t, h.client, "pod-test", agentsession.StateAwaitingApproval, time.Now().Add(-2*time.Hour))

	p := h.pool()
	p.RegisterSession(sess.ID, func() {})
	defer p.UnregisterSession(sess.ID)

	require.NoError(t, p.detectAndRecoverOrphans(ctx))

	row, err := h.client.AgentSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StateAwaitingApproval, row.State)
	assert.Equal(t, 0, p.Health().OrphansRecovered)
}

func TestOrphanDetectionLoopRecoversStaleSession(t *testing.T) {
	h := newQueueHarness(t)
	h.cfg.OrphanDetectionInterval = config.Duration(20 * time.Millisecond)
	h.cfg.OrphanThreshold = config.Duration(time.Minute)

	stale := insertClaimedSession(t, h.client, "dead-pod", agentsession.StatePlanning, time.Now().Add(-time.Hour))

	p := h.pool()
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	require.Eventually(t, func() bool {
		row, err := h.client.AgentSession.Get(context.Background(), stale.ID)
		return err == nil && row.State == agentsession.StateFailed
	}, 5*time.Second, 10*time.Millisecond, "background scan should fail the orphan")
}

func TestCleanupStartupOrphans(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	mine := insertClaimedSession(t, h.client, "pod-1", agentsession.StateExecuting, time.Now().Add(-time.Hour))
	insertRunningStep(t, h.client, mine.ID, 1)
	alsoMine := insertClaimedSession(t, h.client, "pod-1", agentsession.StateAwaitingApproval, time.Now().Add(-time.Minute))
	other := insertClaimedSession(t, h.client, "pod-2", agentsession.StateExecuting, time.Now().Add(-time.Hour))

	require.NoError(t, CleanupStartupOrphans(ctx, h.client, "pod-1"))

	for _, id := range []string{mine.ID, alsoMine.ID} {
		row, err := h.client.AgentSession.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StateFailed, row.State)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "pod pod-1 restarted")
		assert.NotNil(t, row.EndedAt)
	}

	step, err := h.client.AgentStep.Query().
		Where(agentstep.SessionIDEQ(mine.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentstep.StatusFailed, step.Status)

	otherRow, err := h.client.AgentSession.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StateExecuting, otherRow.State, "sessions owned by other pods are untouched")
}

func TestCleanupStartupOrphansNoOrphans(t *testing.T) {
	h := newQueueHarness(t)
	require.NoError(t, CleanupStartupOrphans(context.Background(), h.client, "pod-1"))
}

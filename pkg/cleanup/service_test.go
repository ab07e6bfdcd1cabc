package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
	testdb "github.com/praxislabs/praxis/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		AuditRetentionDays:     30,
		AuditYoloRetentionDays: 90,
		SessionRetentionDays:   30,
		CleanupInterval:        config.Duration(1 * time.Hour),
	}
}

func setupServices(t *testing.T) (*database.Client, *services.SessionService, *services.AuditService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewSessionService(client.Client), services.NewAuditService(client.Client)
}

func createFinishedSession(t *testing.T, client *database.Client, sessions *services.SessionService, endedAgo time.Duration) string {
	t.Helper()
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Task:      "check disk usage",
	})
	require.NoError(t, err)

	err = client.AgentSession.UpdateOneID(session.ID).
		SetState(agentsession.StateCompleted).
		SetEndedAt(time.Now().Add(-endedAgo)).
		Exec(ctx)
	require.NoError(t, err)
	return session.ID
}

func TestService_DeletesOldFinishedSessions(t *testing.T) {
	client, sessions, audit := setupServices(t)
	ctx := context.Background()

	oldID := createFinishedSession(t, client, sessions, 40*24*time.Hour)
	recentID := createFinishedSession(t, client, sessions, 24*time.Hour)

	svc := NewService(testRetentionConfig(), sessions, audit)
	svc.runAll(ctx)

	_, err := sessions.GetSession(ctx, oldID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = sessions.GetSession(ctx, recentID, false)
	assert.NoError(t, err)
}

func TestService_PreservesRunningSessions(t *testing.T) {
	client, sessions, audit := setupServices(t)
	ctx := context.Background()

	// A long-lived session that never finished has no ended_at and must
	// survive any retention pass.
	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		Task:      "long running task",
	})
	require.NoError(t, err)

	err = client.AgentSession.UpdateOneID(session.ID).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), sessions, audit)
	svc.runAll(ctx)

	_, err = sessions.GetSession(ctx, session.ID, false)
	assert.NoError(t, err)
}

func TestService_CleansUpAuditByMode(t *testing.T) {
	client, sessions, audit := setupServices(t)
	ctx := context.Background()

	record := func(yolo bool, age time.Duration) string {
		rec := models.AuditRecord{
			SessionID:        uuid.New().String(),
			ToolName:         "web_search",
			RiskLevel:        models.RiskSafe,
			ApprovalDecision: models.OutcomeAuto,
			Success:          true,
			YoloMode:         yolo,
		}
		entry, err := audit.Record(ctx, rec)
		require.NoError(t, err)
		require.NoError(t, client.AuditEntry.UpdateOneID(entry.ID).
			SetTimestamp(time.Now().Add(-age)).
			Exec(ctx))
		return entry.ID
	}

	oldStandard := record(false, 45*24*time.Hour)
	freshStandard := record(false, 24*time.Hour)
	oldYolo := record(true, 45*24*time.Hour) // past standard age, inside yolo age
	expiredYolo := record(true, 120*24*time.Hour)

	svc := NewService(testRetentionConfig(), sessions, audit)
	svc.runAll(ctx)

	remaining, err := client.AuditEntry.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{freshStandard, oldYolo}, remaining)
	assert.NotContains(t, remaining, oldStandard)
	assert.NotContains(t, remaining, expiredYolo)

	// The surviving yolo row still carries its mode flag.
	count, err := client.AuditEntry.Query().
		Where(auditentry.YoloModeEQ(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_StartStop(t *testing.T) {
	_, sessions, audit := setupServices(t)

	svc := NewService(testRetentionConfig(), sessions, audit)
	svc.Start(context.Background())
	svc.Stop()

	// Stop is idempotent against a second call path via nil cancel guard.
	done := make(chan struct{})
	go func() {
		svc.Start(context.Background())
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup service did not stop")
	}
}

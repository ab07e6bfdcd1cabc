package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/pkg/models"
	testdb "github.com/praxislabs/praxis/test/database"
)

func sampleRecord(sessionID string) models.AuditRecord {
	return models.AuditRecord{
		SessionID:        sessionID,
		ToolName:         "file_write",
		RiskLevel:        models.RiskModerate,
		Parameters:       map[string]any{"path": "/tmp/out.txt", "content": "hello"},
		ApprovalDecision: models.OutcomeApproved,
		ApprovedBy:       "user",
		DurationMS:       120,
		Success:          true,
		Result:           "wrote 5 bytes",
	}
}

func TestAuditService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	t.Run("persists one entry per invocation", func(t *testing.T) {
		before := time.Now()
		entry, err := service.Record(ctx, sampleRecord("sess-1"))
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "sess-1", entry.SessionID)
		assert.Equal(t, "file_write", entry.ToolName)
		assert.Equal(t, auditentry.RiskLevelModerate, entry.RiskLevel)
		assert.Equal(t, auditentry.ApprovalDecisionApproved, entry.ApprovalDecision)
		require.NotNil(t, entry.ApprovedBy)
		assert.Equal(t, "user", *entry.ApprovedBy)
		assert.True(t, entry.Success)
		assert.False(t, entry.YoloMode)
		assert.Nil(t, entry.FullParameters)
		assert.False(t, entry.Timestamp.Before(before.Add(-time.Second)))

		var params map[string]any
		require.NoError(t, json.Unmarshal([]byte(entry.Parameters), &params))
		assert.Equal(t, "/tmp/out.txt", params["path"])
	})

	t.Run("truncates oversized parameters", func(t *testing.T) {
		rec := sampleRecord("sess-2")
		rec.Parameters = map[string]any{"blob": strings.Repeat("x", 10_000)}

		entry, err := service.Record(ctx, rec)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(entry.Parameters), maxParametersBytes)
		assert.Nil(t, entry.FullParameters)
	})

	t.Run("yolo keeps the full payload", func(t *testing.T) {
		rec := sampleRecord("sess-3")
		rec.YoloMode = true
		rec.ApprovalDecision = models.OutcomeAuto
		rec.Parameters = map[string]any{"blob": strings.Repeat("y", 10_000)}

		entry, err := service.Record(ctx, rec)
		require.NoError(t, err)
		assert.True(t, entry.YoloMode)
		assert.LessOrEqual(t, len(entry.Parameters), maxParametersBytes)
		require.NotNil(t, entry.FullParameters)
		assert.Greater(t, len(*entry.FullParameters), maxParametersBytes)

		var full map[string]any
		require.NoError(t, json.Unmarshal([]byte(*entry.FullParameters), &full))
		assert.Len(t, full["blob"], 10_000)
	})

	t.Run("nil parameters become empty object", func(t *testing.T) {
		rec := sampleRecord("sess-4")
		rec.Parameters = nil

		entry, err := service.Record(ctx, rec)
		require.NoError(t, err)
		assert.Equal(t, "{}", entry.Parameters)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.Record(ctx, models.AuditRecord{ToolName: "x"})
		assert.True(t, IsValidationError(err))
		_, err = service.Record(ctx, models.AuditRecord{SessionID: "s"})
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.Record(ctx, sampleRecord("sess-a"))
		require.NoError(t, err)
	}
	critical := sampleRecord("sess-b")
	critical.RiskLevel = models.RiskCritical
	critical.ApprovalDecision = models.OutcomeRejected
	critical.Success = false
	_, err := service.Record(ctx, critical)
	require.NoError(t, err)

	t.Run("filters by session", func(t *testing.T) {
		page, err := service.List(ctx, models.AuditFilters{SessionID: "sess-a"})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Len(t, page.Entries, 3)
	})

	t.Run("filters by risk level", func(t *testing.T) {
		page, err := service.List(ctx, models.AuditFilters{RiskLevel: "critical"})
		require.NoError(t, err)
		require.Len(t, page.Entries, 1)
		assert.Equal(t, "sess-b", page.Entries[0].SessionID)
	})

	t.Run("filters by time range", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)

		page, err := service.List(ctx, models.AuditFilters{Since: &past, Until: &future})
		require.NoError(t, err)
		assert.Equal(t, 4, page.TotalCount)

		page, err = service.List(ctx, models.AuditFilters{Since: &future})
		require.NoError(t, err)
		assert.Zero(t, page.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := service.List(ctx, models.AuditFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, page.TotalCount)
		assert.Len(t, page.Entries, 2)
	})
}

func TestAuditService_Export(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	_, err := service.Record(ctx, sampleRecord("sess-x"))
	require.NoError(t, err)
	failed := sampleRecord("sess-x")
	failed.Success = false
	failed.Error = "disk full"
	failed.Result = ""
	_, err = service.Record(ctx, failed)
	require.NoError(t, err)

	t.Run("json export", func(t *testing.T) {
		out, err := service.ExportJSON(ctx, models.AuditFilters{SessionID: "sess-x"})
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(out, &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "file_write", rows[0]["tool_name"])
	})

	t.Run("csv export", func(t *testing.T) {
		out, err := service.ExportCSV(ctx, models.AuditFilters{SessionID: "sess-x"})
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3) // header + 2 rows
		assert.Equal(t, "id", records[0][0])
		assert.Equal(t, "session_id", records[0][1])

		// Newest first: the failed entry leads.
		assert.Equal(t, "false", records[1][9])
		assert.Equal(t, "disk full", records[1][11])
	})
}

func TestAuditService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAuditService(client.Client)
	ctx := context.Background()

	backdate := func(t *testing.T, id string, age time.Duration) {
		t.Helper()
		err := client.AuditEntry.UpdateOneID(id).
			SetTimestamp(time.Now().Add(-age)).
			Exec(ctx)
		require.NoError(t, err)
	}

	// Standard entry past 30d, standard entry within 30d.
	oldStandard, err := service.Record(ctx, sampleRecord("s"))
	require.NoError(t, err)
	backdate(t, oldStandard.ID, 31*24*time.Hour)
	freshStandard, err := service.Record(ctx, sampleRecord("s"))
	require.NoError(t, err)

	// YOLO entry past 30d but within 90d, YOLO entry past 90d.
	midYolo := sampleRecord("s")
	midYolo.YoloMode = true
	midYoloEntry, err := service.Record(ctx, midYolo)
	require.NoError(t, err)
	backdate(t, midYoloEntry.ID, 45*24*time.Hour)

	oldYolo := sampleRecord("s")
	oldYolo.YoloMode = true
	oldYoloEntry, err := service.Record(ctx, oldYolo)
	require.NoError(t, err)
	backdate(t, oldYoloEntry.ID, 91*24*time.Hour)

	deleted, err := service.Cleanup(ctx, 30*24*time.Hour, 90*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := service.List(ctx, models.AuditFilters{})
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, e := range remaining.Entries {
		ids[e.ID] = true
	}
	assert.True(t, ids[freshStandard.ID], "fresh standard entry survives")
	assert.True(t, ids[midYoloEntry.ID], "yolo entry inside 90d survives")
	assert.False(t, ids[oldStandard.ID], "standard entry past 30d is gone")
	assert.False(t, ids[oldYoloEntry.ID], "yolo entry past 90d is gone")

	_, err = service.Cleanup(ctx, 0, time.Hour)
	assert.Error(t, err)
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abc", 10))
	assert.Equal(t, "ab", truncateUTF8("abcd", 2))
	// Multi-byte rune at the cut is dropped whole, not split.
	s := "aé" // 'é' is two bytes
	assert.Equal(t, "a", truncateUTF8(s, 2))
}

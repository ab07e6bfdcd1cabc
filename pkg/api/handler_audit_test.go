package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func (h *apiHarness) recordAudit(sessionID, tool string, risk models.RiskLevel, outcome models.ApprovalOutcome) {
	h.t.Helper()
	_, err := h.audit.Record(context.Background(), models.AuditRecord{
		SessionID:        sessionID,
		ToolName:         tool,
		RiskLevel:        risk,
		Parameters:       map[string]any{"path": "/tmp/report.txt"},
		ApprovalDecision: outcome,
		DurationMS:       12,
		Success:          true,
	})
	require.NoError(h.t, err)
}

func TestListAudit(t *testing.T) {
	h := newAPIHarness(t)
	h.recordAudit("sess-1", "file_write", models.RiskModerate, models.OutcomeApproved)
	h.recordAudit("sess-1", "http_get", models.RiskSafe, models.OutcomeAuto)
	h.recordAudit("sess-2", "shell_exec", models.RiskDestructive, models.OutcomeRejected)

	rec := h.do(http.MethodGet, "/api/v1/audit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all models.AuditListResponse
	h.decode(rec, &all)
	assert.Equal(t, 3, all.TotalCount)

	rec = h.do(http.MethodGet, "/api/v1/audit?session_id=sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bySession models.AuditListResponse
	h.decode(rec, &bySession)
	assert.Equal(t, 2, bySession.TotalCount)

	rec = h.do(http.MethodGet, "/api/v1/audit?risk_level=destructive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var byRisk models.AuditListResponse
	h.decode(rec, &byRisk)
	require.Equal(t, 1, byRisk.TotalCount)
	assert.Equal(t, "shell_exec", byRisk.Entries[0].ToolName)
}

func TestListAuditBadParams(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/audit?since=lastweek", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/audit?offset=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportAuditJSON(t *testing.T) {
	h := newAPIHarness(t)
	h.recordAudit("sess-1", "file_write", models.RiskModerate, models.OutcomeApproved)

	rec := h.do(http.MethodGet, "/api/v1/audit/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".json")

	var entries []map[string]any
	h.decode(rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "file_write", entries[0]["tool_name"])
}

func TestExportAuditCSV(t *testing.T) {
	h := newAPIHarness(t)
	h.recordAudit("sess-1", "file_write", models.RiskModerate, models.OutcomeApproved)
	h.recordAudit("sess-2", "http_get", models.RiskSafe, models.OutcomeAuto)

	rec := h.do(http.MethodGet, "/api/v1/audit/export?format=csv&session_id=sess-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "session_id")
	assert.Contains(t, body, "http_get")
	assert.NotContains(t, body, "file_write")
}

func TestExportAuditBadFormat(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/audit/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

type approvalOutcome struct {
	result models.ApprovalResult
	err    error
}

// startApprovalWait blocks a synthetic action on the approval manager the
// way the executor does and reports the resolution on the channel.
func (h *apiHarness) startApprovalWait(sessionID, tool string) <-chan approvalOutcome {
	h.t.Helper()

	cls := models.ActionClassification{
		ToolName:         tool,
		Parameters:       map[string]any{"path": "/work/demo/out.txt"},
		RiskLevel:        models.RiskModerate,
		Reason:           "writes inside the project",
		RequiresApproval: true,
	}

	resultCh := make(chan approvalOutcome, 1)
	go func() {
		res, err := h.approvals.RequestApproval(context.Background(), cls, 1, sessionID, 5*time.Second)
		resultCh <- approvalOutcome{result: res, err: err}
	}()

	require.Eventually(h.t, func() bool {
		return len(h.approvals.Pending(sessionID)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	return resultCh
}

func TestListPendingApprovals(t *testing.T) {
	h := newAPIHarness(t)
	resultCh := h.startApprovalWait("sess-1", "file_write")

	rec := h.do(http.MethodGet, "/api/v1/approvals?session_id=sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Approvals []models.ApprovalRequest `json:"approvals"`
	}
	h.decode(rec, &body)
	require.Len(t, body.Approvals, 1)
	assert.Equal(t, "sess-1", body.Approvals[0].SessionID)
	assert.Equal(t, "file_write", body.Approvals[0].Classification.ToolName)

	// Other sessions see nothing.
	rec = h.do(http.MethodGet, "/api/v1/approvals?session_id=sess-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var other struct {
		Approvals []models.ApprovalRequest `json:"approvals"`
	}
	h.decode(rec, &other)
	assert.Empty(t, other.Approvals)

	require.NoError(t, h.approvals.Reject(body.Approvals[0].ID))
	<-resultCh
}

func TestApproveAction(t *testing.T) {
	h := newAPIHarness(t)
	resultCh := h.startApprovalWait("sess-1", "file_write")

	requestID := h.approvals.Pending("sess-1")[0].ID
	rec := h.do(http.MethodPost, "/api/v1/approvals/"+requestID+"/approve", ApproveActionRequest{
		ApproveSimilar: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	out := <-resultCh
	require.NoError(t, out.err)
	assert.Equal(t, models.DecisionApproved, out.result.Decision)
	assert.True(t, out.result.ApproveSimilar)
	assert.Equal(t, "user", out.result.DecidedBy)

	assert.Empty(t, h.approvals.Pending("sess-1"))
}

func TestApproveActionWithModifiedParams(t *testing.T) {
	h := newAPIHarness(t)
	resultCh := h.startApprovalWait("sess-1", "file_write")

	requestID := h.approvals.Pending("sess-1")[0].ID
	rec := h.do(http.MethodPost, "/api/v1/approvals/"+requestID+"/approve", ApproveActionRequest{
		ModifiedParams: map[string]any{"path": "/work/demo/safer.txt"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	out := <-resultCh
	require.NoError(t, out.err)
	assert.Equal(t, "/work/demo/safer.txt", out.result.ModifiedParams["path"])
}

func TestApproveActionBadScope(t *testing.T) {
	h := newAPIHarness(t)
	resultCh := h.startApprovalWait("sess-1", "file_write")
	requestID := h.approvals.Pending("sess-1")[0].ID

	rec := h.do(http.MethodPost, "/api/v1/approvals/"+requestID+"/approve", ApproveActionRequest{
		RememberScope: "forever",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.NoError(t, h.approvals.Reject(requestID))
	<-resultCh
}

func TestApproveUnknownRequest(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/approvals/missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRejectAction(t *testing.T) {
	h := newAPIHarness(t)
	resultCh := h.startApprovalWait("sess-1", "shell_exec")

	requestID := h.approvals.Pending("sess-1")[0].ID
	rec := h.do(http.MethodPost, "/api/v1/approvals/"+requestID+"/reject", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := <-resultCh
	require.NoError(t, out.err)
	assert.Equal(t, models.DecisionRejected, out.result.Decision)
}

func TestRejectUnknownRequest(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/approvals/missing/reject", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func (h *apiHarness) submit(task string) string {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/api/v1/sessions", models.CreateSessionRequest{
		Task:        task,
		ProjectPath: "/work/demo",
	})
	require.Equal(h.t, http.StatusAccepted, rec.Code)

	var resp SubmitResponse
	h.decode(rec, &resp)
	require.NotEmpty(h.t, resp.SessionID)
	return resp.SessionID
}

func TestSubmitSession(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/sessions", models.CreateSessionRequest{
		Task: "check why the deploy job is red",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp SubmitResponse
	h.decode(rec, &resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(models.StateIdle), resp.State)

	sess, err := h.sessions.GetSession(context.Background(), resp.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, "check why the deploy job is red", sess.Task)
}

func TestSubmitSessionValidation(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/sessions", models.CreateSessionRequest{Task: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "task")
}

func TestSubmitSessionDuplicateID(t *testing.T) {
	h := newAPIHarness(t)

	req := models.CreateSessionRequest{SessionID: "dup-1", Task: "first"}
	rec := h.do(http.MethodPost, "/api/v1/sessions", req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = h.do(http.MethodPost, "/api/v1/sessions", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetSession(t *testing.T) {
	h := newAPIHarness(t)
	id := h.submit("summarize open incidents")

	rec := h.do(http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	h.decode(rec, &body)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, string(models.StateIdle), body["state"])
}

func TestGetSessionNotFound(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSessions(t *testing.T) {
	h := newAPIHarness(t)

	first := h.submit("inspect pod restarts")
	h.submit("rotate the stale credentials")
	h.submit("collect service latencies")
	require.NoError(t, h.sessions.FinishSession(context.Background(), first, models.StateCompleted, ""))

	rec := h.do(http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all models.SessionListResponse
	h.decode(rec, &all)
	assert.Equal(t, 3, all.TotalCount)

	rec = h.do(http.MethodGet, "/api/v1/sessions?state=idle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var idle models.SessionListResponse
	h.decode(rec, &idle)
	assert.Equal(t, 2, idle.TotalCount)

	rec = h.do(http.MethodGet, "/api/v1/sessions?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var paged models.SessionListResponse
	h.decode(rec, &paged)
	assert.Equal(t, 3, paged.TotalCount)
	assert.Len(t, paged.Sessions, 1)
}

func TestListSessionsBadParams(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/sessions?limit=-2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/sessions?created_after=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RFC 3339")
}

func TestCancelQueuedSession(t *testing.T) {
	h := newAPIHarness(t)
	id := h.submit("drain the staging node")

	rec := h.do(http.MethodPost, "/api/v1/sessions/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelResponse
	h.decode(rec, &resp)
	assert.Equal(t, id, resp.SessionID)

	sess, err := h.sessions.GetSession(context.Background(), id, false)
	require.NoError(t, err)
	assert.Equal(t, string(models.StateCancelled), string(sess.State))

	// A second cancel hits the terminal-state freeze.
	rec = h.do(http.MethodPost, "/api/v1/sessions/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelSessionNotFound(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/sessions/missing/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSteps(t *testing.T) {
	h := newAPIHarness(t)
	id := h.submit("tidy the workspace")

	tool := "file_list"
	require.NoError(t, h.steps.SavePlan(context.Background(), id, &models.Plan{
		Task:     "tidy the workspace",
		Overview: "list then remove stale artifacts",
		Steps: []*models.PlanStep{
			{ID: 1, Description: "list workspace files", ToolName: &tool},
			{ID: 2, Description: "summarize what can go", Dependencies: []int{1}},
		},
	}))

	rec := h.do(http.MethodGet, "/api/v1/sessions/"+id+"/steps", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SessionID string           `json:"session_id"`
		Steps     []map[string]any `json:"steps"`
	}
	h.decode(rec, &body)
	assert.Equal(t, id, body.SessionID)
	assert.Len(t, body.Steps, 2)
}

func TestListStepsUnknownSession(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/sessions/missing/steps", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

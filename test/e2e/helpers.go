package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// httpClient is shared by every test app; the per-request budget keeps a
// wedged server from eating the whole test timeout.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// sessionView is the slice of the session row the scenarios assert on.
type sessionView struct {
	ID           string  `json:"id"`
	State        string  `json:"state"`
	Task         string  `json:"task"`
	ProjectPath  string  `json:"project_path"`
	PlanOverview string  `json:"plan_overview"`
	ErrorMessage *string `json:"error_message"`
}

// stepView mirrors the step rows returned by the steps endpoint.
type stepView struct {
	StepID       int     `json:"step_id"`
	Description  string  `json:"description"`
	ToolName     *string `json:"tool_name"`
	Status       string  `json:"status"`
	Result       *string `json:"result"`
	ErrorMessage *string `json:"error_message"`
}

// auditView mirrors the audit rows returned by the audit endpoint.
type auditView struct {
	ToolName         string  `json:"tool_name"`
	RiskLevel        string  `json:"risk_level"`
	Parameters       string  `json:"parameters"`
	FullParameters   *string `json:"full_parameters"`
	ApprovalDecision string  `json:"approval_decision"`
	ApprovedBy       *string `json:"approved_by"`
	Success          bool    `json:"success"`
	YoloMode         bool    `json:"yolo_mode"`
}

type killView struct {
	Triggered bool   `json:"triggered"`
	Reason    string `json:"reason"`
}

func (app *TestApp) doJSON(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, app.BaseURL+path, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (app *TestApp) getJSON(t *testing.T, path string, out any) int {
	return app.doJSON(t, http.MethodGet, path, nil, out)
}

func (app *TestApp) postJSON(t *testing.T, path string, body, out any) int {
	return app.doJSON(t, http.MethodPost, path, body, out)
}

func (app *TestApp) putJSON(t *testing.T, path string, body, out any) int {
	return app.doJSON(t, http.MethodPut, path, body, out)
}

// submitTask queues a session over the API and returns its id.
func (app *TestApp) submitTask(t *testing.T, task, projectPath string) string {
	t.Helper()
	id := uuid.NewString()
	var resp struct {
		SessionID string `json:"session_id"`
		State     string `json:"state"`
	}
	status := app.postJSON(t, "/api/v1/sessions", models.CreateSessionRequest{
		SessionID:   id,
		Task:        task,
		ProjectPath: projectPath,
	}, &resp)
	require.Equal(t, http.StatusAccepted, status)
	require.Equal(t, id, resp.SessionID)
	return id
}

// session fetches the current session row.
func (app *TestApp) session(t *testing.T, id string) sessionView {
	t.Helper()
	var view sessionView
	status := app.getJSON(t, "/api/v1/sessions/"+id+"?with_steps=false", &view)
	require.Equal(t, http.StatusOK, status)
	return view
}

// waitSessionState polls until the session reaches the wanted state.
// Reaching a different terminal state fails immediately with the row's
// error message, which beats a bare timeout for diagnosing a bad run.
func (app *TestApp) waitSessionState(t *testing.T, id, want string, timeout time.Duration) sessionView {
	t.Helper()
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-deadline:
			view := app.session(t, id)
			t.Fatalf("session %s stuck in state %q waiting for %q", id, view.State, want)
			return view
		case <-tick.C:
			view := app.session(t, id)
			if view.State == want {
				return view
			}
			if terminalSessionState(view.State) {
				msg := ""
				if view.ErrorMessage != nil {
					msg = *view.ErrorMessage
				}
				t.Fatalf("session %s ended %q (want %q): %s", id, view.State, want, msg)
			}
		}
	}
}

func terminalSessionState(state string) bool {
	return state == "completed" || state == "failed" || state == "cancelled"
}

// steps fetches the persisted step rows for a session.
func (app *TestApp) steps(t *testing.T, sessionID string) []stepView {
	t.Helper()
	var resp struct {
		Steps []stepView `json:"steps"`
	}
	status := app.getJSON(t, "/api/v1/sessions/"+sessionID+"/steps", &resp)
	require.Equal(t, http.StatusOK, status)
	return resp.Steps
}

// auditEntries fetches the audit rows for a session, oldest first. The
// endpoint serves newest-first; scenarios assert in execution order.
func (app *TestApp) auditEntries(t *testing.T, sessionID string) []auditView {
	t.Helper()
	var resp struct {
		Entries []auditView `json:"entries"`
	}
	status := app.getJSON(t, "/api/v1/audit?session_id="+sessionID, &resp)
	require.Equal(t, http.StatusOK, status)
	for i, j := 0, len(resp.Entries)-1; i < j; i, j = i+1, j-1 {
		resp.Entries[i], resp.Entries[j] = resp.Entries[j], resp.Entries[i]
	}
	return resp.Entries
}

// pendingApprovals lists the approval requests currently blocking a session.
func (app *TestApp) pendingApprovals(t *testing.T, sessionID string) []models.ApprovalRequest {
	t.Helper()
	var resp struct {
		Approvals []models.ApprovalRequest `json:"approvals"`
	}
	status := app.getJSON(t, "/api/v1/approvals?session_id="+sessionID, &resp)
	require.Equal(t, http.StatusOK, status)
	return resp.Approvals
}

// waitPendingApproval polls until a session has a pending approval request.
func (app *TestApp) waitPendingApproval(t *testing.T, sessionID string, timeout time.Duration) models.ApprovalRequest {
	t.Helper()
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-deadline:
			t.Fatalf("no approval request appeared for session %s", sessionID)
			return models.ApprovalRequest{}
		case <-tick.C:
			if pending := app.pendingApprovals(t, sessionID); len(pending) > 0 {
				return pending[0]
			}
		}
	}
}

// setLevel changes a project's autonomy level over the API.
func (app *TestApp) setLevel(t *testing.T, projectPath, level string) {
	t.Helper()
	status := app.putJSON(t, "/api/v1/autonomy/level", map[string]string{
		"project_path": projectPath,
		"level":        level,
	}, nil)
	require.Equal(t, http.StatusOK, status)
}

// killStatus fetches the kill switch state.
func (app *TestApp) killStatus(t *testing.T) killView {
	t.Helper()
	var view killView
	status := app.getJSON(t, "/api/v1/kill", &view)
	require.Equal(t, http.StatusOK, status)
	return view
}

// planResponse scripts a chat-model reply carrying a plan. The planner
// overwrites the echoed task with the canonical one, so a placeholder is
// fine here.
func planResponse(overview string, steps ...map[string]any) llm.Response {
	plan := map[string]any{
		"task":     "scripted",
		"overview": overview,
		"steps":    steps,
	}
	data, err := json.Marshal(plan)
	if err != nil {
		panic(err)
	}
	return llm.Response{
		Content:    string(data),
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 40, OutputTokens: 80},
	}
}

func toolStep(id int, tool string, params map[string]any, deps ...int) map[string]any {
	if deps == nil {
		deps = []int{}
	}
	return map[string]any{
		"id":           id,
		"description":  fmt.Sprintf("run %s", tool),
		"tool_name":    tool,
		"params":       params,
		"dependencies": deps,
	}
}

// staticTool answers every invocation with the same payload. Classified
// safe (non-destructive network), so it runs without an approval gate at
// any autonomy level above L1.
type staticTool struct {
	name string
	data string
}

func (s *staticTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        s.name,
		Description: "Fetch a report from the data warehouse.",
		Category:    models.CategoryNetwork,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"report": map[string]any{"type": "string"},
			},
		},
	}
}

func (s *staticTool) Execute(context.Context, map[string]any, *tools.AgentContext) (*models.ToolResult, error) {
	return &models.ToolResult{Success: true, Data: s.data}, nil
}

// blockingTool parks until its context is cancelled, so a scenario can
// catch a session mid-step. Classified safe (non-destructive network), so
// no approval gate delays the start.
type blockingTool struct {
	name    string
	started chan struct{}
	once    sync.Once
}

func newBlockingTool(name string) *blockingTool {
	return &blockingTool{name: name, started: make(chan struct{})}
}

func (b *blockingTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        b.name,
		Description: "Export a dataset to the warehouse.",
		Category:    models.CategoryNetwork,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dataset": map[string]any{"type": "string"},
			},
		},
	}
}

func (b *blockingTool) Execute(ctx context.Context, _ map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	b.once.Do(func() { close(b.started) })
	<-ctx.Done()
	return nil, ctx.Err()
}

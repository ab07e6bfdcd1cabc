package e2e

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/api"
	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Scenario: gated file write at autonomy L3
// ────────────────────────────────────────────────────────────

func TestE2E_ApprovedFileWrite(t *testing.T) {
	app := NewTestApp(t)
	outPath := filepath.Join(app.WorkspaceRoot, "out.txt")

	// A write outside the project directory classifies destructive, which
	// L3 gates behind approval.
	app.Model.Enqueue(planResponse("Write the requested file.",
		toolStep(1, "file_write", map[string]any{"path": outPath, "content": "hello"}),
	))
	app.setLevel(t, app.ProjectDir, "L3")

	id := app.submitTask(t, "write hello to out.txt", app.ProjectDir)

	req := app.waitPendingApproval(t, id, 10*time.Second)
	assert.Equal(t, "file_write", req.Classification.ToolName)
	assert.Equal(t, models.RiskDestructive, req.Classification.RiskLevel)
	assert.True(t, req.Classification.RequiresApproval)

	status := app.postJSON(t, "/api/v1/approvals/"+req.ID+"/approve", nil, nil)
	require.Equal(t, http.StatusOK, status)

	app.waitSessionState(t, id, "completed", 15*time.Second)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	rows := app.auditEntries(t, id)
	require.Len(t, rows, 1)
	assert.Equal(t, "file_write", rows[0].ToolName)
	assert.Equal(t, "destructive", rows[0].RiskLevel)
	assert.Equal(t, "approved", rows[0].ApprovalDecision)
	assert.True(t, rows[0].Success)
	assert.False(t, rows[0].YoloMode)
	assert.Nil(t, rows[0].FullParameters, "full parameters are a YOLO-only field")
}

// ────────────────────────────────────────────────────────────
// Scenario: L5 bypasses the approval gate, never the audit
// ────────────────────────────────────────────────────────────

func TestE2E_YoloBypassesApproval(t *testing.T) {
	app := NewTestApp(t)
	outPath := filepath.Join(app.WorkspaceRoot, "yolo.txt")

	app.Model.Enqueue(planResponse("Write the requested file.",
		toolStep(1, "file_write", map[string]any{"path": outPath, "content": "hello"}),
	))
	app.setLevel(t, app.ProjectDir, "L5")

	stream := app.streamEvents(t)
	id := app.submitTask(t, "write hello to yolo.txt", app.ProjectDir)
	app.waitSessionState(t, id, "completed", 15*time.Second)

	evs := stream.collect(id)
	assert.Zero(t, countEvents(evs, models.EventApprovalRequested),
		"L5 must not raise an approval gate")
	requireEventOrder(t, evs,
		models.EventStateChange,
		models.EventPlanCreated,
		models.EventStepStarted,
		models.EventActionClassified,
		models.EventToolCalled,
		models.EventToolResult,
		models.EventStepCompleted,
		models.EventCompleted,
	)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	rows := app.auditEntries(t, id)
	require.Len(t, rows, 1)
	assert.Equal(t, "auto", rows[0].ApprovalDecision)
	assert.True(t, rows[0].YoloMode)
	require.NotNil(t, rows[0].FullParameters)
	assert.Contains(t, *rows[0].FullParameters, "yolo.txt")
}

// ────────────────────────────────────────────────────────────
// Scenario: approve-similar covers sibling writes
// ────────────────────────────────────────────────────────────

func TestE2E_ApproveSimilarCoversSiblingWrites(t *testing.T) {
	app := NewTestApp(t)
	srcDir := filepath.Join(app.WorkspaceRoot, "src")
	pathA := filepath.Join(srcDir, "a.py")
	pathB := filepath.Join(srcDir, "b.py")

	app.Model.Enqueue(planResponse("Write both modules.",
		toolStep(1, "file_write", map[string]any{"path": pathA, "content": "print('a')"}),
		toolStep(2, "file_write", map[string]any{"path": pathB, "content": "print('b')"}, 1),
	))
	app.setLevel(t, app.ProjectDir, "L3")

	stream := app.streamEvents(t)
	id := app.submitTask(t, "create a.py and b.py", app.ProjectDir)

	req := app.waitPendingApproval(t, id, 10*time.Second)
	require.Equal(t, 1, req.StepID)
	status := app.postJSON(t, "/api/v1/approvals/"+req.ID+"/approve", api.ApproveActionRequest{
		ApproveSimilar: true,
		RememberScope:  "session",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	app.waitSessionState(t, id, "completed", 15*time.Second)

	// The second write rides the similarity cache: one human decision, one
	// approval_requested event, two executed steps.
	evs := stream.collect(id)
	assert.Equal(t, 1, countEvents(evs, models.EventApprovalRequested))
	assert.Equal(t, 2, countEvents(evs, models.EventApprovalReceived))

	for _, p := range []string{pathA, pathB} {
		_, err := os.Stat(p)
		assert.NoError(t, err, "expected %s to exist", p)
	}

	rows := app.auditEntries(t, id)
	require.Len(t, rows, 2)
	assert.Equal(t, "approved", rows[0].ApprovalDecision)
	require.NotNil(t, rows[0].ApprovedBy)
	assert.Equal(t, "user", *rows[0].ApprovedBy)
	assert.Equal(t, "approved", rows[1].ApprovalDecision)
	require.NotNil(t, rows[1].ApprovedBy)
	assert.Equal(t, models.DecidedBySimilarMatch, *rows[1].ApprovedBy)
}

// ────────────────────────────────────────────────────────────
// Scenario: unplannable reply degrades to a direct answer
// ────────────────────────────────────────────────────────────

func TestE2E_PlannerFallbackAnswersDirectly(t *testing.T) {
	app := NewTestApp(t)

	// The model ignores the JSON contract; the planner degrades to a
	// single reasoning-only step, which asks the model again directly.
	app.Model.Enqueue(llm.Response{
		Content:    "Happy to help! First I would think about geography.",
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 30, OutputTokens: 15},
	})
	app.Model.Enqueue(llm.Response{
		Content:    "Paris is the capital of France.",
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 45, OutputTokens: 10},
	})

	id := app.submitTask(t, "what is the capital of France?", app.ProjectDir)
	app.waitSessionState(t, id, "completed", 15*time.Second)

	steps := app.steps(t, id)
	require.Len(t, steps, 1)
	assert.Nil(t, steps[0].ToolName, "fallback step carries no tool")
	assert.Equal(t, "completed", steps[0].Status)
	require.NotNil(t, steps[0].Result)
	assert.Equal(t, "Paris is the capital of France.", *steps[0].Result)

	// No tool ran, so nothing reached the audit trail.
	assert.Empty(t, app.auditEntries(t, id))
}

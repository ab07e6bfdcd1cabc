package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Scenario: kill switch mid-plan
// ────────────────────────────────────────────────────────────

func TestE2E_KillSwitchAbortsMidPlan(t *testing.T) {
	block := newBlockingTool("warehouse_export")
	app := NewTestApp(t,
		WithTool(&staticTool{name: "warehouse_report", data: "42 rows"}),
		WithTool(block),
	)

	// Five sequential steps; the third parks until cancelled so the test
	// can trip the switch at a known point in the plan.
	app.Model.Enqueue(planResponse("Export the warehouse.",
		toolStep(1, "warehouse_report", map[string]any{"report": "daily"}),
		toolStep(2, "warehouse_report", map[string]any{"report": "weekly"}, 1),
		toolStep(3, "warehouse_export", map[string]any{"dataset": "all"}, 2),
		toolStep(4, "warehouse_report", map[string]any{"report": "monthly"}, 3),
		toolStep(5, "warehouse_report", map[string]any{"report": "yearly"}, 4),
	))

	stream := app.streamEvents(t)
	id := app.submitTask(t, "export everything", app.ProjectDir)

	select {
	case <-block.started:
	case <-time.After(10 * time.Second):
		t.Fatal("blocking step never started")
	}

	status := app.postJSON(t, "/api/v1/kill", map[string]string{"reason": "emergency stop"}, nil)
	require.Equal(t, http.StatusOK, status)

	app.waitSessionState(t, id, "cancelled", 15*time.Second)

	evs := stream.collect(id)
	assert.Equal(t, 3, countEvents(evs, models.EventStepStarted),
		"steps past the abort point must never start")
	requireEventOrder(t, evs,
		models.EventKillSwitchTriggered,
		models.EventCancelled,
	)

	// Completed work stays completed; the aborted step fails; unreached
	// steps are swept to skipped.
	byID := map[int]stepView{}
	for _, s := range app.steps(t, id) {
		byID[s.StepID] = s
	}
	assert.Equal(t, "completed", byID[1].Status)
	assert.Equal(t, "completed", byID[2].Status)
	assert.Equal(t, "failed", byID[3].Status)
	assert.Equal(t, "skipped", byID[4].Status)
	assert.Equal(t, "skipped", byID[5].Status)

	// Two executed invocations plus the aborted one; nothing else.
	rows := app.auditEntries(t, id)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Success)
	assert.True(t, rows[1].Success)
	assert.False(t, rows[2].Success)
	assert.Equal(t, "kill_switch", rows[2].ApprovalDecision)

	// The switch stays tripped until an operator re-arms the runtime.
	kill := app.killStatus(t)
	assert.True(t, kill.Triggered)
	assert.Equal(t, "emergency stop", kill.Reason)

	status = app.postJSON(t, "/api/v1/kill/reset", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, app.killStatus(t).Triggered)
}

// ────────────────────────────────────────────────────────────
// Scenario: cancelling a queued session over the API
// ────────────────────────────────────────────────────────────

func TestE2E_CancelRunningSession(t *testing.T) {
	block := newBlockingTool("warehouse_export")
	app := NewTestApp(t, WithTool(block))

	app.Model.Enqueue(planResponse("Export the warehouse.",
		toolStep(1, "warehouse_export", map[string]any{"dataset": "all"}),
	))

	id := app.submitTask(t, "export everything", app.ProjectDir)
	select {
	case <-block.started:
	case <-time.After(10 * time.Second):
		t.Fatal("blocking step never started")
	}

	// A running session cancels through the worker pool's registry.
	status := app.postJSON(t, "/api/v1/sessions/"+id+"/cancel", nil, nil)
	require.Equal(t, http.StatusAccepted, status)

	view := app.waitSessionState(t, id, "cancelled", 15*time.Second)
	assert.Equal(t, "cancelled", view.State)

	// Cancelling a terminal session conflicts.
	status = app.postJSON(t, "/api/v1/sessions/"+id+"/cancel", nil, nil)
	assert.Equal(t, http.StatusConflict, status)
}

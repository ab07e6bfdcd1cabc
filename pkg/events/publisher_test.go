package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func collectOne(t *testing.T, sub *Subscription) models.AgentEvent {
	t.Helper()
	select {
	case ev := <-sub.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return models.AgentEvent{}
	}
}

func TestPublisherStateChange(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()
	pub := NewPublisher(hub)
	sub := hub.Subscribe("s1")

	pub.PublishStateChange("s1", models.StateIdle, models.StatePlanning)

	ev := collectOne(t, sub)
	require.Equal(t, models.EventStateChange, ev.Type)
	payload := ev.Data.(StateChangePayload)
	assert.Equal(t, models.StateIdle, payload.From)
	assert.Equal(t, models.StatePlanning, payload.To)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestPublisherPlanCreatedCopiesSteps(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()
	pub := NewPublisher(hub)
	sub := hub.Subscribe("s1")

	tool := "file_write"
	plan := &models.Plan{
		Task:     "write a file",
		Overview: "one step",
		Steps: []*models.PlanStep{
			{ID: 1, Description: "write it", ToolName: &tool, Status: models.StepPending},
		},
	}
	pub.PublishPlanCreated("s1", plan)

	// Mutating the plan after publishing must not leak into the event.
	plan.Steps[0].Status = models.StepCompleted

	ev := collectOne(t, sub)
	payload := ev.Data.(PlanCreatedPayload)
	require.Len(t, payload.Steps, 1)
	assert.Equal(t, models.StepPending, payload.Steps[0].Status)
	assert.Equal(t, 1, payload.StepCount)
}

func TestPublisherServerEventsHaveNoSession(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()
	pub := NewPublisher(hub)
	all := hub.SubscribeAll()

	pub.PublishServerConnected("srv-1", "github", 12)

	ev := collectOne(t, all)
	require.Equal(t, TypeServerConnected, ev.Type)
	assert.Empty(t, ev.SessionID)
	assert.False(t, ev.Type.IsTerminal())
	assert.Equal(t, 12, ev.Data.(ServerConnectedPayload).ToolCount)
}

// Serialized payload field names are part of the wire contract with UI
// subscribers: snake_case, stable.
func TestPayloadWireContract(t *testing.T) {
	cases := []struct {
		name     string
		payload  any
		wantKeys []string
	}{
		{
			name:     "state_change",
			payload:  StateChangePayload{From: models.StateIdle, To: models.StatePlanning},
			wantKeys: []string{"from", "to"},
		},
		{
			name: "approval_requested",
			payload: ApprovalRequestedPayload{
				RequestID:      "r1",
				StepID:         2,
				TimeoutSeconds: 60,
				Classification: models.ActionClassification{ToolName: "file_write", RiskLevel: models.RiskDestructive},
			},
			wantKeys: []string{"request_id", "step_id", "classification", "timeout_seconds"},
		},
		{
			name:     "tool_result",
			payload:  ToolResultPayload{StepID: 1, CallID: "c1", ToolName: "web_search", Success: true, DurationMS: 42},
			wantKeys: []string{"step_id", "call_id", "tool_name", "success", "duration_ms"},
		},
		{
			name:     "budget_exceeded",
			payload:  BudgetExceededPayload{UsedInput: 900, UsedOutput: 200, MaxTotal: 1000},
			wantKeys: []string{"used_input", "used_output", "max_total"},
		},
		{
			name:     "kill_switch",
			payload:  KillSwitchPayload{Reason: "user"},
			wantKeys: []string{"reason"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.payload)
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, json.Unmarshal(raw, &m))
			for _, key := range tc.wantKeys {
				assert.Contains(t, m, key)
			}
		})
	}
}

func TestEventEnvelopeSerialization(t *testing.T) {
	ev := models.AgentEvent{
		Type:      models.EventToolCalled,
		SessionID: "s1",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Data:      ToolCalledPayload{StepID: 1, CallID: "c1", ToolName: "file_read", Attempt: 1},
	}
	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "tool_called", m["type"])
	assert.Equal(t, "s1", m["session_id"])
	assert.Contains(t, m, "timestamp")
	assert.Contains(t, m, "data")
}

package models

import "time"

// EventType identifies the kind of an AgentEvent.
type EventType string

// Agent event types, published in occurrence order per session.
const (
	EventStateChange         EventType = "state_change"
	EventPlanCreated         EventType = "plan_created"
	EventStepStarted         EventType = "step_started"
	EventStepCompleted       EventType = "step_completed"
	EventToolCalled          EventType = "tool_called"
	EventToolResult          EventType = "tool_result"
	EventActionClassified    EventType = "action_classified"
	EventApprovalRequested   EventType = "approval_requested"
	EventApprovalReceived    EventType = "approval_received"
	EventKillSwitchTriggered EventType = "kill_switch_triggered"
	EventBudgetExceeded      EventType = "budget_exceeded"
	EventError               EventType = "error"
	EventCompleted           EventType = "completed"
	EventCancelled           EventType = "cancelled"
)

// IsTerminal reports whether this event type ends a session's stream.
// Subscriptions auto-close once a terminal event has been delivered.
func (t EventType) IsTerminal() bool {
	return t == EventCompleted || t == EventCancelled || t == EventError
}

// AgentEvent is the envelope broadcast over the event bus. Data holds a
// type-dependent payload (the structs in pkg/events/payloads.go) and
// serializes with snake_case field names.
type AgentEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

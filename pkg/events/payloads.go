package events

import (
	"github.com/praxislabs/praxis/pkg/models"
)

// Internal event types. These flow through the same hub as the session
// event types in pkg/models but concern external server lifecycle; they
// carry no session id and never terminate a subscription.
const (
	TypeServerConnected    models.EventType = "server_connected"
	TypeServerDisconnected models.EventType = "server_disconnected"
)

// StateChangePayload is the payload for state_change events.
type StateChangePayload struct {
	From models.SessionState `json:"from"`
	To   models.SessionState `json:"to"`
}

// PlanCreatedPayload is the payload for plan_created events. The plan is
// copied by value into the event; subscribers never observe later step
// status mutations.
type PlanCreatedPayload struct {
	Overview  string             `json:"overview,omitempty"`
	StepCount int                `json:"step_count"`
	Steps     []models.PlanStep  `json:"steps"`
}

// StepStartedPayload is the payload for step_started events.
type StepStartedPayload struct {
	StepID      int    `json:"step_id"`
	Description string `json:"description"`
	ToolName    string `json:"tool_name,omitempty"`
}

// StepCompletedPayload is the payload for step_completed events.
type StepCompletedPayload struct {
	StepID int               `json:"step_id"`
	Status models.StepStatus `json:"status"`
	Result string            `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ToolCalledPayload is the payload for tool_called events, emitted before
// each invocation attempt (retries emit again).
type ToolCalledPayload struct {
	StepID     int            `json:"step_id"`
	CallID     string         `json:"call_id"`
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Attempt    int            `json:"attempt"`
}

// ToolResultPayload is the payload for tool_result events.
type ToolResultPayload struct {
	StepID     int    `json:"step_id"`
	CallID     string `json:"call_id"`
	ToolName   string `json:"tool_name"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// ActionClassifiedPayload is the payload for action_classified events.
type ActionClassifiedPayload struct {
	StepID         int                         `json:"step_id"`
	Classification models.ActionClassification `json:"classification"`
}

// ApprovalRequestedPayload is the payload for approval_requested events.
type ApprovalRequestedPayload struct {
	RequestID      string                      `json:"request_id"`
	StepID         int                         `json:"step_id"`
	Classification models.ActionClassification `json:"classification"`
	TimeoutSeconds int                         `json:"timeout_seconds"`
}

// ApprovalReceivedPayload is the payload for approval_received events.
type ApprovalReceivedPayload struct {
	RequestID string          `json:"request_id"`
	StepID    int             `json:"step_id"`
	Decision  models.Decision `json:"decision"`
	DecidedBy string          `json:"decided_by,omitempty"`
}

// KillSwitchPayload is the payload for kill_switch_triggered events.
type KillSwitchPayload struct {
	Reason string `json:"reason"`
}

// BudgetExceededPayload is the payload for budget_exceeded events.
type BudgetExceededPayload struct {
	UsedInput  int `json:"used_input"`
	UsedOutput int `json:"used_output"`
	MaxTotal   int `json:"max_total"`
}

// ErrorPayload is the payload for error events (terminal).
type ErrorPayload struct {
	Message string `json:"message"`
}

// CompletedPayload is the payload for completed events (terminal).
type CompletedPayload struct {
	Summary    string `json:"summary,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// CancelledPayload is the payload for cancelled events (terminal).
type CancelledPayload struct {
	Reason string `json:"reason,omitempty"`
}

// ServerConnectedPayload is the payload for server_connected events.
type ServerConnectedPayload struct {
	ServerID   string `json:"server_id"`
	ServerName string `json:"server_name"`
	ToolCount  int    `json:"tool_count"`
}

// ServerDisconnectedPayload is the payload for server_disconnected events.
type ServerDisconnectedPayload struct {
	ServerID   string `json:"server_id"`
	ServerName string `json:"server_name"`
	Error      string `json:"error,omitempty"`
}

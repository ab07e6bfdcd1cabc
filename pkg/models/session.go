package models

import (
	"time"

	"github.com/praxislabs/praxis/ent"
)

// SessionState represents the lifecycle state of an agent session.
type SessionState string

// Session states. Completed, Failed, and Cancelled are terminal: once
// entered, the state never changes and ended_at is set exactly once.
const (
	StateIdle              SessionState = "idle"
	StatePlanning          SessionState = "planning"
	StateExecuting         SessionState = "executing"
	StateAwaitingTool      SessionState = "awaiting_tool"
	StateAwaitingApproval  SessionState = "awaiting_approval"
	StateCompleted         SessionState = "completed"
	StateFailed            SessionState = "failed"
	StateCancelled         SessionState = "cancelled"
)

// IsTerminal reports whether the state is one of the three terminal states.
func (s SessionState) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// MessageRole identifies who produced a session message.
type MessageRole string

// Message roles.
const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// Message is one entry in a session's ordered conversation history.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// CreateSessionRequest contains fields for submitting a new task.
type CreateSessionRequest struct {
	SessionID   string `json:"session_id"`
	Task        string `json:"task"`
	ProjectPath string `json:"project_path,omitempty"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	State         string     `json:"state,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.AgentSession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

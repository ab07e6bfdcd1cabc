package models

import "time"

// Decision is the outcome of one approval request.
type Decision string

// Approval decisions. Timeout means the user never answered; the executor
// treats it as "skip the step", never as a rejection.
const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionTimeout  Decision = "timeout"
)

// RememberScope controls how long an approve-similar grant lives.
type RememberScope string

// Remember scopes. Session-scoped grants die with the session; tool_type
// grants persist across sessions for the same tool name.
const (
	RememberSession  RememberScope = "session"
	RememberToolType RememberScope = "tool_type"
)

// DecidedBySimilarMatch marks results synthesized from the similarity
// cache rather than an explicit user decision.
const DecidedBySimilarMatch = "similar_match"

// ApprovalRequest is the value object surfaced to the UI when a classified
// action needs a human decision. The wait primitive lives inside the
// approval manager; this struct is what crosses the API and event bus.
type ApprovalRequest struct {
	ID             string               `json:"id"`
	SessionID      string               `json:"session_id"`
	StepID         int                  `json:"step_id"`
	Classification ActionClassification `json:"classification"`
	RequestedAt    time.Time            `json:"requested_at"`
}

// ApprovalResult resolves an ApprovalRequest. Exactly one result exists per
// request; setting it unblocks every waiter.
type ApprovalResult struct {
	RequestID      string         `json:"request_id"`
	Decision       Decision       `json:"decision"`
	ApproveSimilar bool           `json:"approve_similar,omitempty"`
	ModifiedParams map[string]any `json:"modified_params,omitempty"`
	RememberScope  RememberScope  `json:"remember_scope,omitempty"`
	DecidedBy      string         `json:"decided_by,omitempty"`
}

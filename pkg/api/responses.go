package api

import (
	"time"

	"github.com/praxislabs/praxis/ent"
)

// SubmitResponse is returned by POST /api/v1/sessions. The session is
// queued in the idle state; a worker claims and runs it asynchronously.
type SubmitResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

// CancelResponse is returned by POST /api/v1/sessions/:id/cancel.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HealthCheck is the status of one dependency in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// KillStatusResponse reports the kill switch state.
type KillStatusResponse struct {
	Triggered   bool       `json:"triggered"`
	Reason      string     `json:"reason,omitempty"`
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
}

// ImportServersResponse reports the outcome of a bulk server import.
// Skipped lists the names of entries that already existed.
type ImportServersResponse struct {
	Created []*ent.ExternalServer `json:"created"`
	Skipped []string              `json:"skipped"`
}

// Package queue provides the worker pool that claims queued sessions and
// drives them through the agent executor.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no idle sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrKillSwitchActive indicates the kill switch is tripped; workers stop
	// claiming new sessions until an operator resets it.
	ErrKillSwitchActive = errors.New("kill switch active")
)

// SessionRunner drives one claimed session through the plan-and-execute
// loop and returns its terminal event.
//
// The runner owns the ENTIRE session lifecycle internally:
//   - Plans, executes steps, records audit entries, publishes events
//   - Writes all intermediate state and the terminal state to the database
//
// The worker only handles claiming, the session timeout, and the cancel
// registry. Implemented by executor.Executor.
type SessionRunner interface {
	RunSession(ctx context.Context, session *ent.AgentSession) models.AgentEvent
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}

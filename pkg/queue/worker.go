package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	sessions *services.SessionService
	kill     *killswitch.Switch
	config   *config.QueueConfig
	runner   SessionRunner
	pool     SessionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, sessions *services.SessionService, kill *killswitch.Switch, cfg *config.QueueConfig, runner SessionRunner, pool SessionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		sessions:     sessions,
		kill:         kill,
		config:       cfg,
		runner:       runner,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) || errors.Is(err, ErrKillSwitchActive) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Honor the kill switch: a tripped switch blocks new claims so a
	//    startup reset cannot erase a trigger another session is acting on.
	if triggered, _ := w.kill.Triggered(); triggered {
		return ErrKillSwitchActive
	}

	// 2. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.AgentSession.Query().
		Where(
			agentsession.PodIDNotNil(),
			agentsession.StateNotIn(terminalStates...),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	// 3. Claim the oldest idle session. A nil session means the queue is
	//    empty or another worker won the row.
	session, err := w.sessions.ClaimNextIdleSession(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming session: %w", err)
	}
	if session == nil {
		return ErrNoSessionsAvailable
	}

	log := slog.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Create session context with timeout
	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout.Duration())
	defer cancelSession()

	// 5. Register cancel function for API-triggered cancellation
	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	// 6. Run the session. The runner persists every state transition and the
	//    terminal outcome itself; the worker only observes the final event.
	terminal := w.runner.RunSession(sessionCtx, session)

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	switch terminal.Type {
	case models.EventCompleted:
		log.Info("Session processing complete", "outcome", terminal.Type)
	case models.EventCancelled:
		log.Info("Session cancelled", "outcome", terminal.Type)
	default:
		log.Warn("Session finished with error", "outcome", terminal.Type)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval.Duration()
	jitter := w.config.PollIntervalJitter.Duration()
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/pkg/models"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned sessions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval.Duration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed sessions whose worker stopped making
// progress and marks them failed (terminal state). OrphanThreshold exceeds
// SessionTimeout, so a session still within its timeout is never swept.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.sessions.FindOrphanedSessions(ctx, p.config.OrphanThreshold.Duration())
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		// A session registered on this pod is still being processed here;
		// leave it to its own timeout.
		if p.isActive(session.ID) {
			continue
		}
		if err := p.recoverOrphanedSession(ctx, session); err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedSession marks a single orphaned session as failed.
func (p *WorkerPool) recoverOrphanedSession(ctx context.Context, session *ent.AgentSession) error {
	log := slog.With("session_id", session.ID, "old_pod_id", session.PodID)

	claimedAt := "unknown"
	if session.StartedAt != nil {
		claimedAt = session.StartedAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if session.PodID != nil {
		podID = *session.PodID
	}

	// Mark session as failed (terminal — no resume)
	msg := fmt.Sprintf("orphaned: pod %s stopped processing, claimed at %s", podID, claimedAt)
	if err := p.sessions.FinishSession(ctx, session.ID, models.StateFailed, msg); err != nil {
		return fmt.Errorf("failed to mark session as failed: %w", err)
	}

	// Mark any step left running by the dead worker
	_, _ = p.client.AgentStep.Update().
		Where(
			agentstep.SessionIDEQ(session.ID),
			agentstep.StatusEQ(agentstep.StatusRunning),
		).
		SetStatus(agentstep.StatusFailed).
		SetErrorMessage("interrupted by worker failure").
		SetCompletedAt(time.Now()).
		Save(ctx)

	log.Warn("Orphaned session marked as failed", "claimed_at", claimedAt)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of sessions owned by this pod
// that were still running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.AgentSession.Query().
		Where(
			agentsession.PodIDEQ(podID),
			agentsession.StateNotIn(terminalStates...),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, session := range orphans {
		err := session.Update().
			SetState(agentsession.StateFailed).
			SetEndedAt(now).
			SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while session was running", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"session_id", session.ID,
				"error", err)
			continue
		}

		// Sweep steps the crashed run left behind
		_, _ = client.AgentStep.Update().
			Where(
				agentstep.SessionIDEQ(session.ID),
				agentstep.StatusEQ(agentstep.StatusRunning),
			).
			SetStatus(agentstep.StatusFailed).
			SetErrorMessage("interrupted by restart").
			SetCompletedAt(now).
			Save(ctx)

		slog.Info("Startup orphan recovered", "session_id", session.ID)
	}

	return nil
}

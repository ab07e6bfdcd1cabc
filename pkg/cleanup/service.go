// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/services"
)

// Service periodically enforces retention policies:
//   - Hard-deletes finished sessions (and their steps) past the TTL
//   - Removes audit entries past their age limit; YOLO-mode entries use a
//     longer limit so bypassed approvals stay reviewable
//
// All operations are idempotent and safe to run from multiple processes.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	auditService   *services.AuditService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	auditService *services.AuditService,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		auditService:   auditService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"audit_retention_days", s.config.AuditRetentionDays,
		"audit_yolo_retention_days", s.config.AuditYoloRetentionDays,
		"interval", s.config.CleanupInterval.Duration())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval.Duration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldSessions(ctx)
	s.cleanupAuditEntries(ctx)
}

func (s *Service) deleteOldSessions(_ context.Context) {
	count, err := s.sessionService.DeleteOldSessions(context.Background(), s.config.SessionRetentionDays)
	if err != nil {
		slog.Error("Retention: session cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old sessions", "count", count)
	}
}

func (s *Service) cleanupAuditEntries(_ context.Context) {
	standardAge := time.Duration(s.config.AuditRetentionDays) * 24 * time.Hour
	yoloAge := time.Duration(s.config.AuditYoloRetentionDays) * 24 * time.Hour

	count, err := s.auditService.Cleanup(context.Background(), standardAge, yoloAge)
	if err != nil {
		slog.Error("Retention: audit cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old audit entries", "count", count)
	}
}

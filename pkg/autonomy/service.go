// Package autonomy manages per-project autonomy levels.
//
// Levels L1 through L4 persist across restarts. L5 (YOLO) is deliberately
// session-only: it lives in an in-memory set and vanishes on process exit,
// so full auto-execution always requires a fresh, conscious opt-in.
package autonomy

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/praxislabs/praxis/pkg/models"
)

// Store persists autonomy settings. Implemented over ent by
// pkg/services.AutonomyStore. Missing projects return (nil, nil).
type Store interface {
	Get(ctx context.Context, projectPath string) (*models.AutonomySettings, error)
	SaveLevel(ctx context.Context, projectPath string, level models.AutonomyLevel) error
	SaveRules(ctx context.Context, projectPath string, allowlist, blocklist []string) error
}

// Observer receives level-change notifications. Called synchronously after
// the change is applied; keep implementations fast.
type Observer func(projectPath string, level models.AutonomyLevel)

// Service is the autonomy level authority.
type Service struct {
	store    Store
	fallback models.AutonomyLevel

	mu        sync.RWMutex
	yolo      map[string]struct{}
	observers []Observer
}

// NewService creates an autonomy service over the given store. fallback is
// the level applied to projects with no stored setting; anything outside
// L1 through L4 is coerced to L2.
func NewService(store Store, fallback models.AutonomyLevel) *Service {
	if !fallback.Valid() || fallback == models.AutonomyL5 {
		fallback = models.DefaultAutonomyLevel
	}
	return &Service{
		store:    store,
		fallback: fallback,
		yolo:     make(map[string]struct{}),
	}
}

// Level returns the effective autonomy level for a project. The in-memory
// YOLO set wins over anything persisted; projects with no stored settings
// get the configured fallback.
func (s *Service) Level(ctx context.Context, projectPath string) models.AutonomyLevel {
	s.mu.RLock()
	_, yolo := s.yolo[projectPath]
	s.mu.RUnlock()
	if yolo {
		return models.AutonomyL5
	}

	settings, err := s.store.Get(ctx, projectPath)
	if err != nil {
		slog.Warn("Failed to load autonomy settings, using default level",
			"project_path", projectPath, "error", err)
		return s.fallback
	}
	if settings == nil {
		return s.fallback
	}
	return settings.Level
}

// SetLevel changes a project's autonomy level. L5 only joins the in-memory
// set; L1 through L4 leave the set and persist. Observers are notified on
// every successful change.
func (s *Service) SetLevel(ctx context.Context, projectPath string, level models.AutonomyLevel) error {
	if !level.Valid() {
		return fmt.Errorf("invalid autonomy level %d", int(level))
	}

	if level == models.AutonomyL5 {
		s.mu.Lock()
		s.yolo[projectPath] = struct{}{}
		s.mu.Unlock()
		slog.Info("YOLO mode enabled (session only)", "project_path", projectPath)
	} else {
		s.mu.Lock()
		delete(s.yolo, projectPath)
		s.mu.Unlock()
		if err := s.store.SaveLevel(ctx, projectPath, level); err != nil {
			return fmt.Errorf("failed to persist autonomy level: %w", err)
		}
	}

	s.notify(projectPath, level)
	return nil
}

// IsYoloActive reports whether the project is in the session-only L5 set.
func (s *Service) IsYoloActive(projectPath string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.yolo[projectPath]
	return ok
}

// Rules returns the persisted allow/block pattern lists for a project.
// Rule lists persist independently of the level, including under L5.
func (s *Service) Rules(ctx context.Context, projectPath string) (allowlist, blocklist []string) {
	settings, err := s.store.Get(ctx, projectPath)
	if err != nil {
		slog.Warn("Failed to load autonomy rules",
			"project_path", projectPath, "error", err)
		return nil, nil
	}
	if settings == nil {
		return nil, nil
	}
	return settings.Allowlist, settings.Blocklist
}

// SetRules replaces the persisted allow/block lists for a project.
func (s *Service) SetRules(ctx context.Context, projectPath string, allowlist, blocklist []string) error {
	if err := s.store.SaveRules(ctx, projectPath, allowlist, blocklist); err != nil {
		return fmt.Errorf("failed to persist autonomy rules: %w", err)
	}
	return nil
}

// Settings returns the effective settings view for a project.
func (s *Service) Settings(ctx context.Context, projectPath string) models.AutonomySettings {
	allow, block := s.Rules(ctx, projectPath)
	return models.AutonomySettings{
		ProjectPath: projectPath,
		Level:       s.Level(ctx, projectPath),
		Allowlist:   allow,
		Blocklist:   block,
	}
}

// Subscribe registers an observer for level changes.
func (s *Service) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

func (s *Service) notify(projectPath string, level models.AutonomyLevel) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, obs := range observers {
		obs(projectPath, level)
	}
}

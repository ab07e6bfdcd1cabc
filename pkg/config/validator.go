package config

import (
	"fmt"

	"github.com/praxislabs/praxis/pkg/models"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return err
	}
	if err := v.validateLLM(); err != nil {
		return err
	}
	if err := v.validateAgent(); err != nil {
		return err
	}
	if err := v.validateSandbox(); err != nil {
		return err
	}
	if err := v.validateTools(); err != nil {
		return err
	}
	if err := v.validateQueue(); err != nil {
		return err
	}
	return v.validateRetention()
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "port", fmt.Errorf("must be between 1 and 65535, got %d", s.Port))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if !knownProviders[l.Provider] {
		return NewValidationError("llm", "provider", fmt.Errorf("unknown provider: %s", l.Provider))
	}
	if l.MaxTokens < 1 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("must be at least 1"))
	}
	if l.Temperature != nil && (*l.Temperature < 0 || *l.Temperature > 2) {
		return NewValidationError("llm", "temperature", fmt.Errorf("must be between 0 and 2"))
	}
	return nil
}

func (v *ConfigValidator) validateAgent() error {
	a := v.cfg.Agent
	if a.MaxIterations < 1 {
		return NewValidationError("agent", "max_iterations", fmt.Errorf("must be at least 1"))
	}
	if a.MaxDuration <= 0 {
		return NewValidationError("agent", "max_duration", fmt.Errorf("must be positive"))
	}
	if a.TokenBudget < 1 {
		return NewValidationError("agent", "token_budget", fmt.Errorf("must be at least 1"))
	}
	if a.ApprovalTimeout <= 0 {
		return NewValidationError("agent", "approval_timeout", fmt.Errorf("must be positive"))
	}
	level, err := models.ParseAutonomyLevel(a.DefaultAutonomyLevel)
	if err != nil {
		return NewValidationError("agent", "default_autonomy_level", err)
	}
	if level == models.AutonomyL5 {
		return NewValidationError("agent", "default_autonomy_level", fmt.Errorf("L5 is session-only and cannot be the default"))
	}
	return nil
}

func (v *ConfigValidator) validateSandbox() error {
	s := v.cfg.Sandbox
	if !s.Disabled && s.Image == "" {
		return NewValidationError("sandbox", "image", fmt.Errorf("image required unless the sandbox is disabled"))
	}
	return nil
}

func (v *ConfigValidator) validateTools() error {
	t := v.cfg.Tools
	if len(t.WorkspaceRoots) == 0 {
		return NewValidationError("tools", "workspace_roots", fmt.Errorf("at least one workspace root required"))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentSessions < 1 {
		return NewValidationError("queue", "max_concurrent_sessions", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must be non-negative"))
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must be less than poll_interval"))
	}
	if q.SessionTimeout <= 0 {
		return NewValidationError("queue", "session_timeout", fmt.Errorf("must be positive"))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}
	if q.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "orphan_detection_interval", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= q.SessionTimeout {
		return NewValidationError("queue", "orphan_threshold", fmt.Errorf("must exceed session_timeout"))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.AuditRetentionDays < 1 {
		return NewValidationError("retention", "audit_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.AuditYoloRetentionDays < r.AuditRetentionDays {
		return NewValidationError("retention", "audit_yolo_retention_days", fmt.Errorf("must be at least audit_retention_days"))
	}
	if r.SessionRetentionDays < 1 {
		return NewValidationError("retention", "session_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

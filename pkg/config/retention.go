package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// AuditRetentionDays is how many days standard audit entries are kept.
	AuditRetentionDays int `yaml:"audit_retention_days"`

	// AuditYoloRetentionDays is how many days YOLO-mode audit entries are
	// kept. YOLO entries outlive standard ones so bypassed approvals stay
	// reviewable.
	AuditYoloRetentionDays int `yaml:"audit_yolo_retention_days"`

	// SessionRetentionDays is how many days finished sessions (and their
	// steps) are kept before hard deletion.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditRetentionDays:     30,
		AuditYoloRetentionDays: 90,
		SessionRetentionDays:   30,
		CleanupInterval:        Duration(6 * time.Hour),
	}
}

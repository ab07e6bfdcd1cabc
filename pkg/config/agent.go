package config

import "time"

// AgentConfig bounds a single session run.
type AgentConfig struct {
	// MaxIterations is the hard cap on executor loop iterations per session.
	MaxIterations int `yaml:"max_iterations"`

	// MaxDuration is the wall-clock ceiling for one session run.
	MaxDuration Duration `yaml:"max_duration"`

	// TokenBudget is the combined input+output token ceiling per session.
	TokenBudget int `yaml:"token_budget"`

	// ApprovalTimeout is how long a step waits for a human decision before
	// it is skipped.
	ApprovalTimeout Duration `yaml:"approval_timeout"`

	// DefaultAutonomyLevel applies to projects with no stored setting.
	// L1 through L4; L5 is session-only and cannot be a default.
	DefaultAutonomyLevel string `yaml:"default_autonomy_level"`
}

// DefaultAgentConfig returns the built-in session run limits.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		MaxIterations:        20,
		MaxDuration:          Duration(5 * time.Minute),
		TokenBudget:          200_000,
		ApprovalTimeout:      Duration(60 * time.Second),
		DefaultAutonomyLevel: "L2",
	}
}

package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how sessions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines.
	// Each worker independently polls and processes sessions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions caps sessions being processed at once,
	// enforced by a database COUNT(*) check before each claim.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking idle sessions.
	PollInterval Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter Duration `yaml:"poll_interval_jitter"`

	// SessionTimeout is the maximum time a session can be processed.
	SessionTimeout Duration `yaml:"session_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active sessions
	// to complete during shutdown.
	GracefulShutdownTimeout Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for claimed sessions
	// whose worker died.
	OrphanDetectionInterval Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claimed session can run before it is
	// considered orphaned. Must exceed SessionTimeout.
	OrphanThreshold Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentSessions:   4,
		PollInterval:            Duration(1 * time.Second),
		PollIntervalJitter:      Duration(500 * time.Millisecond),
		SessionTimeout:          Duration(10 * time.Minute),
		GracefulShutdownTimeout: Duration(2 * time.Minute),
		OrphanDetectionInterval: Duration(1 * time.Minute),
		OrphanThreshold:         Duration(15 * time.Minute),
	}
}

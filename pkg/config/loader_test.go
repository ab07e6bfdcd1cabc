package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "praxis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "praxis.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, 5*time.Minute, cfg.Agent.MaxDuration.Duration())
	assert.Equal(t, 60*time.Second, cfg.Agent.ApprovalTimeout.Duration())
	assert.Equal(t, "L2", cfg.Agent.DefaultAutonomyLevel)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 30, cfg.Retention.AuditRetentionDays)
	assert.Equal(t, 90, cfg.Retention.AuditYoloRetentionDays)
	assert.True(t, cfg.Tools.Headless())
	assert.Empty(t, cfg.Path())
}

func TestInitialize_LoadsFullFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 0.0.0.0
  port: 9000
  allowed_ws_origins: ["app.example.com"]
llm:
  provider: openai
  model: gpt-5
  max_tokens: 4096
  temperature: 0.7
agent:
  max_iterations: 10
  max_duration: 3m
  token_budget: 50000
  approval_timeout: 90s
  default_autonomy_level: L3
sandbox:
  image: local/sandbox:dev
tools:
  workspace_roots: ["/work", "/tmp/scratch"]
  browser_headless: false
queue:
  worker_count: 2
  session_timeout: 4m
  orphan_threshold: 20m
retention:
  audit_retention_days: 14
  audit_yolo_retention_days: 60
  cleanup_interval: 1h
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, []string{"app.example.com"}, cfg.Server.AllowedWSOrigins)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-5", cfg.LLM.Model)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	require.NotNil(t, cfg.LLM.Temperature)
	assert.InDelta(t, 0.7, *cfg.LLM.Temperature, 0.001)

	assert.Equal(t, 10, cfg.Agent.MaxIterations)
	assert.Equal(t, 3*time.Minute, cfg.Agent.MaxDuration.Duration())
	assert.Equal(t, 50000, cfg.Agent.TokenBudget)
	assert.Equal(t, 90*time.Second, cfg.Agent.ApprovalTimeout.Duration())
	assert.Equal(t, "L3", cfg.Agent.DefaultAutonomyLevel)

	assert.Equal(t, "local/sandbox:dev", cfg.Sandbox.Image)
	assert.Equal(t, []string{"/work", "/tmp/scratch"}, cfg.Tools.WorkspaceRoots)
	assert.False(t, cfg.Tools.Headless())

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 4*time.Minute, cfg.Queue.SessionTimeout.Duration())
	assert.Equal(t, 20*time.Minute, cfg.Queue.OrphanThreshold.Duration())

	assert.Equal(t, 14, cfg.Retention.AuditRetentionDays)
	assert.Equal(t, 60, cfg.Retention.AuditYoloRetentionDays)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval.Duration())

	assert.Equal(t, path, cfg.Path())
}

func TestInitialize_PartialSectionKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
llm:
  provider: google
queue:
  worker_count: 8
  max_concurrent_sessions: 8
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "google", cfg.LLM.Provider)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)

	// Defaults preserved inside partially specified sections
	assert.Equal(t, 8192, cfg.LLM.MaxTokens)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval.Duration())

	// Untouched sections keep full defaults
	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, 30, cfg.Retention.SessionRetentionDays)
}

func TestInitialize_ExpandsEnvTemplates(t *testing.T) {
	t.Setenv("PRAXIS_TEST_WEAVIATE", "http://localhost:8080")

	path := writeConfigFile(t, `
tools:
  weaviate_url: "{{.PRAXIS_TEST_WEAVIATE}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Tools.WeaviateURL)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("PRAXIS_PORT", "9999")
	t.Setenv("PRAXIS_LLM_PROVIDER", "xai")
	t.Setenv("PRAXIS_SANDBOX_IMAGE", "local/override:latest")

	path := writeConfigFile(t, `
server:
  port: 9000
llm:
  provider: openai
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// Environment wins over the file
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "xai", cfg.LLM.Provider)
	assert.Equal(t, "local/override:latest", cfg.Sandbox.Image)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not: a: mapping")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.File)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "unknown provider",
			yaml:    "llm:\n  provider: bedrock\n",
			wantMsg: "unknown provider",
		},
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 70000\n",
			wantMsg: "between 1 and 65535",
		},
		{
			name:    "yolo default autonomy",
			yaml:    "agent:\n  default_autonomy_level: L5\n",
			wantMsg: "session-only",
		},
		{
			name:    "jitter exceeds poll interval",
			yaml:    "queue:\n  poll_interval: 100ms\n  poll_interval_jitter: 200ms\n",
			wantMsg: "less than poll_interval",
		},
		{
			name:    "yolo retention below standard",
			yaml:    "retention:\n  audit_yolo_retention_days: 7\n",
			wantMsg: "at least audit_retention_days",
		},
		{
			name:    "orphan threshold below session timeout",
			yaml:    "queue:\n  session_timeout: 30m\n",
			wantMsg: "must exceed session_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.yaml)
			_, err := Initialize(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient opens a file-backed database in a temp dir so the full
// startup path (DSN pragmas, embedded migrations) is exercised.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	client, err := NewClient(ctx, Config{
		Path:        filepath.Join(t.TempDir(), "praxis.db"),
		BusyTimeout: 2 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestNewClientAppliesMigrations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	rows, err := client.DB().QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	tables := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{
		"agent_sessions", "agent_steps", "audit_entries",
		"external_servers", "tool_approvals", "project_autonomies",
	} {
		assert.True(t, tables[want], "expected table %s", want)
	}
}

func TestNewClientEnablesPragmas(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var journalMode string
	require.NoError(t, client.DB().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var foreignKeys int
	require.NoError(t, client.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestNewClientIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "praxis.db")

	first, err := NewClient(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening an already-migrated database must not fail on ErrNoChange.
	second, err := NewClient(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestDeletingSessionCascadesToSteps(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	session, err := client.AgentSession.Create().
		SetID("sess-1").
		SetTask("list the repo files").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AgentStep.Create().
		SetSessionID(session.ID).
		SetStepID(1).
		SetDescription("run ls").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.AgentSession.DeleteOne(session).Exec(ctx))

	var count int
	err = client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM agent_steps WHERE session_id = ?`, session.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "steps should cascade-delete with their session")
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.SQLiteVersion)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local query should answer within a second")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Path: "data/praxis.db"}, wantErr: false},
		{name: "in-memory", cfg: Config{Path: ":memory:"}, wantErr: false},
		{name: "missing path", cfg: Config{}, wantErr: true},
		{name: "negative busy timeout", cfg: Config{Path: "x.db", BusyTimeout: -time.Second}, wantErr: true},
		{name: "negative lifetime", cfg: Config{Path: "x.db", ConnMaxLifetime: -time.Minute}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	dsn := Config{Path: "data/praxis.db", BusyTimeout: 2 * time.Second}.DSN()
	assert.Contains(t, dsn, "file:data/praxis.db?")
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=2000")
	assert.Contains(t, dsn, "_foreign_keys=on")

	// Unset timeout falls back to five seconds.
	assert.Contains(t, Config{Path: "x.db"}.DSN(), "_busy_timeout=5000")
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{"PRAXIS_DB_PATH", "PRAXIS_DATA_DIR", "PRAXIS_DB_BUSY_TIMEOUT"}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	clear()
	t.Cleanup(clear)

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "praxis.db"), cfg.Path)
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)

	os.Setenv("PRAXIS_DATA_DIR", "/var/lib/praxis")
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/praxis", "praxis.db"), cfg.Path)

	os.Setenv("PRAXIS_DB_PATH", "/tmp/override.db")
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Path)

	os.Setenv("PRAXIS_DB_BUSY_TIMEOUT", "not-a-duration")
	_, err = LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PRAXIS_DB_BUSY_TIMEOUT")
}

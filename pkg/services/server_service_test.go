package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/pkg/models"
	testdb "github.com/praxislabs/praxis/test/database"
)

func stdioConfig(name string) models.ExternalServerConfig {
	return models.ExternalServerConfig{
		Name:           name,
		Description:    "filesystem helpers",
		Transport:      models.TransportStdio,
		Command:        "npx",
		Args:           []string{"-y", "@modelcontextprotocol/server-filesystem", "/data"},
		Env:            map[string]string{"LOG_LEVEL": "warn"},
		Trust:          models.TrustUserAdded,
		SandboxEnabled: true,
		Enabled:        true,
	}
}

func TestServerService_CreateServer(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	t.Run("creates stdio server", func(t *testing.T) {
		server, err := service.CreateServer(ctx, stdioConfig("fs"))
		require.NoError(t, err)
		assert.NotEmpty(t, server.ID)
		assert.Equal(t, "fs", server.Name)
		assert.Equal(t, externalserver.TransportStdio, server.Transport)
		require.NotNil(t, server.Command)
		assert.Equal(t, "npx", *server.Command)
		assert.Equal(t, []string{"-y", "@modelcontextprotocol/server-filesystem", "/data"}, server.Args)
		assert.True(t, server.SandboxEnabled)
		assert.Nil(t, server.URL)
	})

	t.Run("creates http server", func(t *testing.T) {
		server, err := service.CreateServer(ctx, models.ExternalServerConfig{
			Name:      "remote",
			Transport: models.TransportHTTP,
			URL:       "https://tools.example.com/mcp",
			Headers:   map[string]string{"Authorization": "Bearer token"},
			Trust:     models.TrustVerified,
			Enabled:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, server.URL)
		assert.Equal(t, "https://tools.example.com/mcp", *server.URL)
		assert.Equal(t, externalserver.TrustVerified, server.Trust)
		assert.Nil(t, server.Command)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := service.CreateServer(ctx, stdioConfig("dup"))
		require.NoError(t, err)
		_, err = service.CreateServer(ctx, stdioConfig("dup"))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects invalid transport pairing", func(t *testing.T) {
		cfg := stdioConfig("bad")
		cfg.Command = ""
		_, err := service.CreateServer(ctx, cfg)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestServerService_UpdateServer(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	server, err := service.CreateServer(ctx, stdioConfig("switchable"))
	require.NoError(t, err)

	// Switch transport from stdio to http; stdio fields must be wiped.
	updated, err := service.UpdateServer(ctx, server.ID, models.ExternalServerConfig{
		Name:      "switchable",
		Transport: models.TransportHTTP,
		URL:       "https://tools.example.com/mcp",
		Trust:     models.TrustUserAdded,
		Enabled:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, externalserver.TransportHTTP, updated.Transport)
	require.NotNil(t, updated.URL)
	assert.Nil(t, updated.Command)
	assert.Empty(t, updated.Args)
	assert.Empty(t, updated.Env)

	_, err = service.UpdateServer(ctx, "missing", stdioConfig("x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerService_DeleteCascadesApprovals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	server, err := service.CreateServer(ctx, stdioConfig("doomed"))
	require.NoError(t, err)
	require.NoError(t, service.SetToolApproval(ctx, server.ID, "read_file", true))
	require.NoError(t, service.SetToolApproval(ctx, server.ID, "write_file", false))

	require.NoError(t, service.DeleteServer(ctx, server.ID))

	var count int
	err = client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tool_approvals WHERE server_id = ?`, server.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "approvals should cascade-delete with their server")

	assert.ErrorIs(t, service.DeleteServer(ctx, server.ID), ErrNotFound)
}

func TestServerService_ConnectionOutcomes(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	server, err := service.CreateServer(ctx, stdioConfig("flaky"))
	require.NoError(t, err)

	require.NoError(t, service.MarkError(ctx, server.ID, "connection refused"))
	got, err := service.GetServer(ctx, server.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastError)
	assert.Equal(t, "connection refused", *got.LastError)
	assert.Nil(t, got.LastConnected)

	now := time.Now()
	require.NoError(t, service.MarkConnected(ctx, server.ID, now))
	got, err = service.GetServer(ctx, server.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastConnected)
	assert.Nil(t, got.LastError, "success clears the previous error")
}

func TestServerService_ImportMCPServers(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	_, err := service.CreateServer(ctx, stdioConfig("existing"))
	require.NoError(t, err)

	file := models.MCPServersFile{
		MCPServers: map[string]models.MCPServerEntry{
			"github": {
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-github"},
				Env:     map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": "${GITHUB_TOKEN}"},
			},
			"search": {
				URL:     "https://search.example.com/mcp",
				Headers: map[string]string{"X-Api-Key": "k"},
			},
			"existing": {Command: "other"},
		},
	}

	created, skipped, err := service.ImportMCPServers(ctx, file)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, []string{"existing"}, skipped)

	byName := make(map[string]*ent.ExternalServer, len(created))
	for _, s := range created {
		byName[s.Name] = s
	}
	require.Contains(t, byName, "github")
	assert.Equal(t, externalserver.TransportStdio, byName["github"].Transport)
	assert.Equal(t, externalserver.TrustUserAdded, byName["github"].Trust)
	assert.True(t, byName["github"].SandboxEnabled, "imported servers default to sandboxed")

	require.Contains(t, byName, "search")
	assert.Equal(t, externalserver.TransportHTTP, byName["search"].Transport)
	require.NotNil(t, byName["search"].URL)
	assert.Equal(t, "https://search.example.com/mcp", *byName["search"].URL)
}

func TestServerService_ToolApprovals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	server, err := service.CreateServer(ctx, stdioConfig("approvable"))
	require.NoError(t, err)

	require.NoError(t, service.SetToolApproval(ctx, server.ID, "read_file", true))

	approvals, err := service.ListToolApprovals(ctx, server.ID)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	assert.True(t, approvals[0].Approved)
	require.NotNil(t, approvals[0].ApprovedAt)

	// Revoking clears the approval timestamp.
	require.NoError(t, service.SetToolApproval(ctx, server.ID, "read_file", false))
	approvals, err = service.ListToolApprovals(ctx, server.ID)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	assert.False(t, approvals[0].Approved)
	assert.Nil(t, approvals[0].ApprovedAt)

	// Unknown server cannot gain approvals.
	err = service.SetToolApproval(ctx, "missing", "tool", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewServerService(client.Client)
	ctx := context.Background()

	server, err := service.CreateServer(ctx, stdioConfig("roundtrip"))
	require.NoError(t, err)
	require.NoError(t, service.MarkError(ctx, server.ID, "boom"))
	server, err = service.GetServer(ctx, server.ID)
	require.NoError(t, err)

	cfg := ToConfig(server)
	assert.Equal(t, server.ID, cfg.ID)
	assert.Equal(t, "roundtrip", cfg.Name)
	assert.Equal(t, models.TransportStdio, cfg.Transport)
	assert.Equal(t, "npx", cfg.Command)
	assert.Equal(t, models.TrustUserAdded, cfg.Trust)
	assert.Equal(t, "boom", cfg.LastError)
	assert.NoError(t, cfg.Validate())
}

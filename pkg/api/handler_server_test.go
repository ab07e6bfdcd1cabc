package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/models"
)

func stdioServerConfig(name string) models.ExternalServerConfig {
	return models.ExternalServerConfig{
		Name:      name,
		Transport: models.TransportStdio,
		Command:   "npx",
		Args:      []string{"-y", "@kubernetes/mcp-server"},
		Category:  "kubernetes",
	}
}

func TestServerCRUD(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/servers", stdioServerConfig("k8s"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created ent.ExternalServer
	h.decode(rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "k8s", created.Name)
	// User-added servers default to the untrusted tier.
	assert.Equal(t, string(models.TrustUserAdded), string(created.Trust))

	rec = h.do(http.MethodGet, "/api/v1/servers/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	update := stdioServerConfig("k8s")
	update.Description = "cluster introspection tools"
	rec = h.do(http.MethodPut, "/api/v1/servers/"+created.ID, update)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated ent.ExternalServer
	h.decode(rec, &updated)
	assert.Equal(t, "cluster introspection tools", updated.Description)

	rec = h.do(http.MethodGet, "/api/v1/servers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Servers []*ent.ExternalServer `json:"servers"`
	}
	h.decode(rec, &list)
	assert.Len(t, list.Servers, 1)

	rec = h.do(http.MethodDelete, "/api/v1/servers/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/servers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateServerValidation(t *testing.T) {
	h := newAPIHarness(t)

	cfg := stdioServerConfig("broken")
	cfg.Command = ""
	rec := h.do(http.MethodPost, "/api/v1/servers", cfg)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cfg = stdioServerConfig("")
	rec = h.do(http.MethodPost, "/api/v1/servers", cfg)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportServers(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/servers/import", models.MCPServersFile{
		MCPServers: map[string]models.MCPServerEntry{
			"github": {Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-github"}},
			"search": {URL: "https://search.example.com/mcp"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportServersResponse
	h.decode(rec, &resp)
	assert.Len(t, resp.Created, 2)
	assert.Empty(t, resp.Skipped)

	// Re-importing the same names skips them.
	rec = h.do(http.MethodPost, "/api/v1/servers/import", models.MCPServersFile{
		MCPServers: map[string]models.MCPServerEntry{
			"github": {Command: "npx"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(rec, &resp)
	assert.Empty(t, resp.Created)
	assert.Equal(t, []string{"github"}, resp.Skipped)
}

func TestReconnectWithoutManager(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/servers/any/reconnect", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestToolApprovals(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/servers", stdioServerConfig("k8s"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var server ent.ExternalServer
	h.decode(rec, &server)

	approved := true
	rec = h.do(http.MethodPut, "/api/v1/servers/"+server.ID+"/tools/pods_list", ToolApprovalRequest{
		Approved: &approved,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/servers/"+server.ID+"/tools", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Tools []*ent.ToolApproval `json:"tools"`
	}
	h.decode(rec, &body)
	require.Len(t, body.Tools, 1)
	assert.Equal(t, "pods_list", body.Tools[0].ToolName)
	assert.True(t, body.Tools[0].Approved)

	// Revoking flips the flag on the same row.
	revoked := false
	rec = h.do(http.MethodPut, "/api/v1/servers/"+server.ID+"/tools/pods_list", ToolApprovalRequest{
		Approved: &revoked,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/servers/"+server.ID+"/tools", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body.Tools = nil
	h.decode(rec, &body)
	require.Len(t, body.Tools, 1)
	assert.False(t, body.Tools[0].Approved)
}

func TestToolApprovalValidation(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/servers", stdioServerConfig("k8s"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var server ent.ExternalServer
	h.decode(rec, &server)

	// Missing approved field fails binding.
	rec = h.do(http.MethodPut, "/api/v1/servers/"+server.ID+"/tools/pods_list", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown server has no tools to bless.
	approved := true
	rec = h.do(http.MethodPut, "/api/v1/servers/missing/tools/pods_list", ToolApprovalRequest{
		Approved: &approved,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/servers/missing/tools", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

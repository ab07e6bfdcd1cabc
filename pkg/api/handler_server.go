package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
)

// connectTimeout bounds the synchronous dial attempted after a server is
// created, updated, or asked to reconnect.
const connectTimeout = 15 * time.Second

// listServers handles GET /api/v1/servers. With enabled=true only enabled
// servers are returned.
func (s *Server) listServers(c *gin.Context) {
	servers, err := s.servers.ListServers(c.Request.Context(), c.Query("enabled") == "true")
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"servers": servers})
}

// getServer handles GET /api/v1/servers/:id.
func (s *Server) getServer(c *gin.Context) {
	server, err := s.servers.GetServer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// createServer handles POST /api/v1/servers. An enabled server is dialed
// immediately; a failed dial is recorded on the row, not surfaced as a
// creation failure.
func (s *Server) createServer(c *gin.Context) {
	var cfg models.ExternalServerConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.servers.CreateServer(c.Request.Context(), cfg)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.connectServer(c.Request.Context(), created)
	c.JSON(http.StatusCreated, created)
}

// updateServer handles PUT /api/v1/servers/:id. Connection state follows
// the enabled flag: enabled servers are re-dialed, disabled ones hung up.
func (s *Server) updateServer(c *gin.Context) {
	var cfg models.ExternalServerConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.servers.UpdateServer(c.Request.Context(), c.Param("id"), cfg)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if s.mcp != nil {
		if updated.Enabled {
			connectCtx, cancel := context.WithTimeout(c.Request.Context(), connectTimeout)
			defer cancel()
			if err := s.mcp.Reconnect(connectCtx, services.ToConfig(updated)); err != nil {
				slog.Warn("Failed to reconnect updated server",
					"server", updated.Name, "error", err)
			}
		} else {
			s.mcp.Disconnect(updated.ID)
		}
	}

	c.JSON(http.StatusOK, updated)
}

// deleteServer handles DELETE /api/v1/servers/:id. Tool approvals cascade
// with the row; a live connection is hung up first.
func (s *Server) deleteServer(c *gin.Context) {
	serverID := c.Param("id")

	if s.mcp != nil {
		s.mcp.Disconnect(serverID)
	}

	if err := s.servers.DeleteServer(c.Request.Context(), serverID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// importServers handles POST /api/v1/servers/import with a standard
// mcpServers config file. Entries whose name already exists are skipped.
func (s *Server) importServers(c *gin.Context) {
	var file models.MCPServersFile
	if err := c.ShouldBindJSON(&file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, skipped, err := s.servers.ImportMCPServers(c.Request.Context(), file)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	for _, server := range created {
		s.connectServer(c.Request.Context(), server)
	}

	c.JSON(http.StatusOK, &ImportServersResponse{Created: created, Skipped: skipped})
}

// reconnectServer handles POST /api/v1/servers/:id/reconnect.
func (s *Server) reconnectServer(c *gin.Context) {
	if s.mcp == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tool server manager not available"})
		return
	}

	server, err := s.servers.GetServer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	connectCtx, cancel := context.WithTimeout(c.Request.Context(), connectTimeout)
	defer cancel()
	if err := s.mcp.Reconnect(connectCtx, services.ToConfig(server)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("reconnect failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"server_id": server.ID, "connected": true})
}

// listToolApprovals handles GET /api/v1/servers/:id/tools.
func (s *Server) listToolApprovals(c *gin.Context) {
	serverID := c.Param("id")

	if _, err := s.servers.GetServer(c.Request.Context(), serverID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	approvals, err := s.servers.ListToolApprovals(c.Request.Context(), serverID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"server_id": serverID, "tools": approvals})
}

// setToolApproval handles PUT /api/v1/servers/:id/tools/:tool.
func (s *Server) setToolApproval(c *gin.Context) {
	var req ToolApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serverID := c.Param("id")
	toolName := c.Param("tool")
	if err := s.servers.SetToolApproval(c.Request.Context(), serverID, toolName, *req.Approved); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"server_id": serverID,
		"tool":      toolName,
		"approved":  *req.Approved,
	})
}

// connectServer dials a newly created or imported server when it is
// enabled. Failures land on the server row via the manager's error
// recording.
func (s *Server) connectServer(ctx context.Context, server *ent.ExternalServer) {
	if s.mcp == nil || !server.Enabled {
		return
	}
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := s.mcp.Connect(connectCtx, services.ToConfig(server)); err != nil {
		slog.Warn("Failed to connect external server",
			"server", server.Name, "error", err)
	}
}

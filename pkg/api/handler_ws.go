package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /api/v1/ws to a websocket and hands the
// connection to the ConnectionManager, which blocks until the client
// disconnects. Cross-origin upgrades are rejected unless the origin is
// listed in the server config.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "websocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	})
	if err != nil {
		// Accept has already written the HTTP error response.
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

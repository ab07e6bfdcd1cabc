package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// killStatus handles GET /api/v1/kill.
func (s *Server) killStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.killStatusBody())
}

// triggerKill handles POST /api/v1/kill. Running sessions abort at the
// next step boundary; workers stop claiming until the switch is reset.
func (s *Server) triggerKill(c *gin.Context) {
	var req KillRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "manual kill switch"
	}

	s.kill.Trigger(reason)
	slog.Warn("Kill switch triggered via API", "reason", reason)
	c.JSON(http.StatusOK, s.killStatusBody())
}

// resetKill handles POST /api/v1/kill/reset, re-arming the runtime after
// an emergency stop.
func (s *Server) resetKill(c *gin.Context) {
	s.kill.Reset()
	slog.Info("Kill switch reset via API")
	c.JSON(http.StatusOK, s.killStatusBody())
}

func (s *Server) killStatusBody() *KillStatusResponse {
	triggered, reason := s.kill.Triggered()
	resp := &KillStatusResponse{Triggered: triggered, Reason: reason}
	if triggered {
		at := s.kill.TriggeredAt()
		resp.TriggeredAt = &at
	}
	return resp
}

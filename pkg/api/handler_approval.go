package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/models"
)

// listPendingApprovals handles GET /api/v1/approvals. An optional
// session_id query narrows the list to one session.
func (s *Server) listPendingApprovals(c *gin.Context) {
	pending := s.approvals.Pending(c.Query("session_id"))
	c.JSON(http.StatusOK, gin.H{"approvals": pending})
}

// approveAction handles POST /api/v1/approvals/:id/approve. The body is
// optional; without one this is a plain single-action approval.
func (s *Server) approveAction(c *gin.Context) {
	requestID := c.Param("id")

	var req ApproveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := models.RememberScope(req.RememberScope)
	switch scope {
	case "":
		scope = models.RememberSession
	case models.RememberSession, models.RememberToolType:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "remember_scope must be session or tool_type"})
		return
	}

	if err := s.approvals.Approve(requestID, req.ApproveSimilar, req.ModifiedParams, scope); err != nil {
		// The only failure is an unknown or already resolved request.
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"decision":   models.DecisionApproved,
	})
}

// rejectAction handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectAction(c *gin.Context) {
	requestID := c.Param("id")

	if err := s.approvals.Reject(requestID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"decision":   models.DecisionRejected,
	})
}

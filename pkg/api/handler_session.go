package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/models"
)

// submitSession handles POST /api/v1/sessions.
func (s *Server) submitSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &SubmitResponse{
		SessionID: sess.ID,
		State:     string(sess.State),
	})
}

// listSessions handles GET /api/v1/sessions.
func (s *Server) listSessions(c *gin.Context) {
	filters, err := parseSessionFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getSession handles GET /api/v1/sessions/:id. Steps are included unless
// with_steps=false.
func (s *Server) getSession(c *gin.Context) {
	withSteps := c.DefaultQuery("with_steps", "true") != "false"

	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"), withSteps)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// cancelSession handles POST /api/v1/sessions/:id/cancel.
//
// An actively running session is torn down through its context; the
// executor records the terminal state. A session still waiting in the
// queue is finished directly.
func (s *Server) cancelSession(c *gin.Context) {
	sessionID := c.Param("id")

	if s.pool != nil && s.pool.CancelSession(sessionID) {
		c.JSON(http.StatusAccepted, &CancelResponse{
			SessionID: sessionID,
			Message:   "cancellation requested",
		})
		return
	}

	err := s.sessions.FinishSession(c.Request.Context(), sessionID, models.StateCancelled,
		"cancelled by user before execution")
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &CancelResponse{
		SessionID: sessionID,
		Message:   "session cancelled",
	})
}

// listSteps handles GET /api/v1/sessions/:id/steps.
func (s *Server) listSteps(c *gin.Context) {
	sessionID := c.Param("id")

	// Distinguish "no steps yet" from "no such session".
	if _, err := s.sessions.GetSession(c.Request.Context(), sessionID, false); err != nil {
		abortWithServiceError(c, err)
		return
	}

	steps, err := s.steps.ListSteps(c.Request.Context(), sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "steps": steps})
}

func parseSessionFilters(c *gin.Context) (models.SessionFilters, error) {
	filters := models.SessionFilters{State: c.Query("state")}

	var err error
	if filters.Limit, err = parseIntParam(c, "limit"); err != nil {
		return filters, err
	}
	if filters.Offset, err = parseIntParam(c, "offset"); err != nil {
		return filters, err
	}
	if filters.CreatedAfter, err = parseTimeParam(c, "created_after"); err != nil {
		return filters, err
	}
	if filters.CreatedBefore, err = parseTimeParam(c, "created_before"); err != nil {
		return filters, err
	}
	return filters, nil
}

// parseIntParam parses an optional non-negative integer query parameter.
// Absent means zero; the service applies its defaults.
func parseIntParam(c *gin.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

// parseTimeParam parses an optional RFC 3339 timestamp query parameter.
func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC 3339 timestamp", name)
	}
	return &t, nil
}

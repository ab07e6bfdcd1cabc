package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
//
// Only praxis's own components (database, worker pool) decide the overall
// status. Disconnected external tool servers degrade the report but never
// make it unhealthy, so an orchestrator watching this endpoint cannot be
// tricked into restarting the runtime by a flaky third-party server.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.mcp != nil {
		statuses := s.mcp.Statuses()
		disconnected := 0
		for _, st := range statuses {
			if !st.Connected {
				disconnected++
			}
		}
		if disconnected > 0 {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["tool_servers"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: fmt.Sprintf("%d of %d servers disconnected", disconnected, len(statuses)),
			}
		} else {
			checks["tool_servers"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// readyHandler handles GET /ready. Unlike /health it stays minimal: a
// single database ping decides readiness.
func (s *Server) readyHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.DB().PingContext(reqCtx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

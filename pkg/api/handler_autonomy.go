package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/models"
)

// getAutonomy handles GET /api/v1/autonomy. The project_path query selects
// the project; empty means the default project.
func (s *Server) getAutonomy(c *gin.Context) {
	settings := s.autonomy.Settings(c.Request.Context(), c.Query("project_path"))
	c.JSON(http.StatusOK, settings)
}

// setAutonomyLevel handles PUT /api/v1/autonomy/level. Levels L1 through
// L4 persist; L5 holds only until the process restarts.
func (s *Server) setAutonomyLevel(c *gin.Context) {
	var req SetLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := models.ParseAutonomyLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.autonomy.SetLevel(c.Request.Context(), req.ProjectPath, level); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.autonomy.Settings(c.Request.Context(), req.ProjectPath))
}

// setAutonomyRules handles PUT /api/v1/autonomy/rules, replacing the
// project's allowlist and blocklist wholesale.
func (s *Server) setAutonomyRules(c *gin.Context) {
	var req SetRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.autonomy.SetRules(c.Request.Context(), req.ProjectPath, req.Allowlist, req.Blocklist); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.autonomy.Settings(c.Request.Context(), req.ProjectPath))
}

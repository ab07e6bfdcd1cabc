package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/models"
)

// listAudit handles GET /api/v1/audit.
func (s *Server) listAudit(c *gin.Context) {
	filters, err := parseAuditFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.audit.List(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// exportAudit handles GET /api/v1/audit/export?format=json|csv. The same
// filters as the list endpoint apply; the export is not paginated.
func (s *Server) exportAudit(c *gin.Context) {
	filters, err := parseAuditFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("audit-%s", time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := s.audit.ExportJSON(c.Request.Context(), filters)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
		c.Data(http.StatusOK, "application/json", data)

	case "csv":
		data, err := s.audit.ExportCSV(c.Request.Context(), filters)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
	}
}

func parseAuditFilters(c *gin.Context) (models.AuditFilters, error) {
	filters := models.AuditFilters{
		SessionID: c.Query("session_id"),
		RiskLevel: c.Query("risk_level"),
	}

	var err error
	if filters.Limit, err = parseIntParam(c, "limit"); err != nil {
		return filters, err
	}
	if filters.Offset, err = parseIntParam(c, "offset"); err != nil {
		return filters, err
	}
	if filters.Since, err = parseTimeParam(c, "since"); err != nil {
		return filters, err
	}
	if filters.Until, err = parseTimeParam(c, "until"); err != nil {
		return filters, err
	}
	return filters, nil
}

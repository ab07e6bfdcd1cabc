package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func TestGetAutonomyDefaults(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/autonomy?project_path=/work/demo", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.AutonomySettings
	h.decode(rec, &settings)
	assert.Equal(t, "/work/demo", settings.ProjectPath)
	assert.Equal(t, models.DefaultAutonomyLevel, settings.Level)
}

func TestSetAutonomyLevel(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPut, "/api/v1/autonomy/level", SetLevelRequest{
		ProjectPath: "/work/demo",
		Level:       "L4",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.AutonomySettings
	h.decode(rec, &settings)
	assert.Equal(t, models.AutonomyL4, settings.Level)

	rec = h.do(http.MethodGet, "/api/v1/autonomy?project_path=/work/demo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(rec, &settings)
	assert.Equal(t, models.AutonomyL4, settings.Level)
}

func TestSetAutonomyLevelInvalid(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPut, "/api/v1/autonomy/level", SetLevelRequest{
		ProjectPath: "/work/demo",
		Level:       "L9",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodPut, "/api/v1/autonomy/level", map[string]string{
		"project_path": "/work/demo",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAutonomyLevelYolo(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPut, "/api/v1/autonomy/level", SetLevelRequest{
		ProjectPath: "/work/demo",
		Level:       "L5",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.AutonomySettings
	h.decode(rec, &settings)
	assert.Equal(t, models.AutonomyL5, settings.Level)

	// Dropping back out of YOLO restores a persisted level.
	rec = h.do(http.MethodPut, "/api/v1/autonomy/level", SetLevelRequest{
		ProjectPath: "/work/demo",
		Level:       "L2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(rec, &settings)
	assert.Equal(t, models.AutonomyL2, settings.Level)
}

func TestSetAutonomyRules(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodPut, "/api/v1/autonomy/rules", SetRulesRequest{
		ProjectPath: "/work/demo",
		Allowlist:   []string{"file_read", "http_get"},
		Blocklist:   []string{"shell_exec"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.AutonomySettings
	h.decode(rec, &settings)
	assert.Equal(t, []string{"file_read", "http_get"}, settings.Allowlist)
	assert.Equal(t, []string{"shell_exec"}, settings.Blocklist)
}

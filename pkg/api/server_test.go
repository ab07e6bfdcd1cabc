package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/approval"
	"github.com/praxislabs/praxis/pkg/autonomy"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/services"
	testdb "github.com/praxislabs/praxis/test/database"
)

// stubCatalog satisfies the approval manager's tool lookup.
type stubCatalog struct{}

func (stubCatalog) Definition(name string) (models.ToolDefinition, bool) {
	return models.ToolDefinition{Name: name, Category: models.CategoryNetwork}, true
}

// apiHarness runs the full HTTP surface against a real database. The
// worker pool and tool server manager stay nil; the affected endpoints
// degrade exactly as they do when those subsystems are down.
type apiHarness struct {
	t         *testing.T
	db        *database.Client
	hub       *events.Hub
	kill      *killswitch.Switch
	approvals *approval.Manager
	sessions  *services.SessionService
	steps     *services.StepService
	audit     *services.AuditService
	router    *gin.Engine
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	hub := events.NewHub(events.DefaultQueueSize)
	t.Cleanup(hub.Close)

	kill := killswitch.New()
	approvals := approval.NewManager(stubCatalog{}, events.NewPublisher(hub))
	sessions := services.NewSessionService(db.Client)
	steps := services.NewStepService(db.Client)
	audit := services.NewAuditService(db.Client)

	srv := NewServer(Options{
		Config:    config.DefaultServerConfig(),
		DB:        db,
		Sessions:  sessions,
		Steps:     steps,
		Audit:     audit,
		Servers:   services.NewServerService(db.Client),
		Approvals: approvals,
		Autonomy:  autonomy.NewService(services.NewAutonomyStore(db.Client), models.DefaultAutonomyLevel),
		Kill:      kill,
		Hub:       hub,
	})

	return &apiHarness{
		t:         t,
		db:        db,
		hub:       hub,
		kill:      kill,
		approvals: approvals,
		sessions:  sessions,
		steps:     steps,
		audit:     audit,
		router:    srv.Router(),
	}
}

// do runs one request through the router and returns the recorder.
func (h *apiHarness) do(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *apiHarness) decode(rec *httptest.ResponseRecorder, into any) {
	h.t.Helper()
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	h.decode(rec, &resp)
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	assert.NotEmpty(t, resp.Version)
}

func TestReadyEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestMetricsEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "praxis_")
}

func TestSecurityHeaders(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestUnknownRoute(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

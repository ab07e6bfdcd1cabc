// Package e2e boots a complete praxis instance and drives it the way an
// operator would: sessions submitted over the HTTP API, approvals decided
// over the HTTP API, events observed over the websocket stream, results
// checked on disk and in the audit trail.
package e2e

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/api"
	"github.com/praxislabs/praxis/pkg/approval"
	"github.com/praxislabs/praxis/pkg/autonomy"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/executor"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/mcp"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/planner"
	"github.com/praxislabs/praxis/pkg/queue"
	"github.com/praxislabs/praxis/pkg/safety"
	"github.com/praxislabs/praxis/pkg/services"
	"github.com/praxislabs/praxis/pkg/tools"
	"github.com/praxislabs/praxis/pkg/tools/builtin"
	testdb "github.com/praxislabs/praxis/test/database"
)

// TestApp is a full praxis instance: real database, real services, real
// worker pool and HTTP server, with only the chat model scripted and the
// external server dialer replaceable.
type TestApp struct {
	DB       *database.Client
	Ent      *ent.Client
	Model    *llm.StubModel
	Registry *tools.Registry
	Hub      *events.Hub
	Autonomy *autonomy.Service
	Kill     *killswitch.Switch
	MCP      *mcp.Manager
	Pool     *queue.WorkerPool
	Server   *api.Server

	// WorkspaceRoot is the directory the file tools may touch; ProjectDir
	// is the project directory sessions run against, inside the root.
	WorkspaceRoot string
	ProjectDir    string

	BaseURL string
	WSURL   string

	t *testing.T
}

type testAppConfig struct {
	workerCount int
	agent       *config.AgentConfig
	tools       []tools.Tool
	mcpDial     mcp.DialFunc
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkerCount sets the number of queue worker goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithAgentConfig overrides the session run limits.
func WithAgentConfig(cfg *config.AgentConfig) TestAppOption {
	return func(c *testAppConfig) { c.agent = cfg }
}

// WithTool registers an extra tool alongside the built-ins. Scenarios use
// scripted tools where they need to control timing or output exactly.
func WithTool(tool tools.Tool) TestAppOption {
	return func(c *testAppConfig) { c.tools = append(c.tools, tool) }
}

// WithMCPDial replaces the external server dialer, backing configured
// servers with in-memory transports instead of real processes.
func WithMCPDial(dial mcp.DialFunc) TestAppOption {
	return func(c *testAppConfig) { c.mcpDial = dial }
}

// NewTestApp boots a praxis instance on an OS-assigned port. Shutdown is
// registered via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{workerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.agent == nil {
		tc.agent = defaultAgentConfig()
	}

	// 1. Database, event hub, services.
	db := testdb.NewTestClient(t)
	entClient := db.Client

	hub := events.NewHub(events.DefaultQueueSize)
	publisher := events.NewPublisher(hub)

	sessionService := services.NewSessionService(entClient)
	stepService := services.NewStepService(entClient)
	auditService := services.NewAuditService(entClient)
	serverService := services.NewServerService(entClient)
	autonomyStore := services.NewAutonomyStore(entClient)

	// 2. Tools: the real built-ins confined to a per-test workspace, plus
	// any scripted extras.
	workspace := t.TempDir()
	project := filepath.Join(workspace, "project")
	require.NoError(t, os.MkdirAll(project, 0o755))

	validator, err := builtin.NewPathValidator([]string{workspace})
	require.NoError(t, err)

	registry := tools.NewRegistry()
	require.NoError(t, builtin.RegisterAll(registry, builtin.Options{
		Validator:       validator,
		BrowserHeadless: true,
	}))
	for _, tool := range tc.tools {
		require.NoError(t, registry.RegisterBuiltin(tool))
	}

	// 3. Safety envelope.
	autonomyService := autonomy.NewService(autonomyStore, models.DefaultAutonomyLevel)
	classifier := safety.NewClassifier(autonomyService, registry)
	approvals := approval.NewManager(registry, publisher)
	kill := killswitch.New()

	// 4. External server manager, dialer swapped when a scenario says so.
	var mcpManager *mcp.Manager
	if tc.mcpDial != nil {
		mcpManager = mcp.NewTestManager(registry, publisher, serverService, tc.mcpDial)
	} else {
		mcpManager = mcp.NewManager(registry, publisher, nil, serverService)
	}

	// 5. Executor over a scripted model and the real planner.
	model := llm.NewStub()
	exec := executor.New(executor.Options{
		Model:      model,
		Planner:    planner.New(model),
		Tools:      registry,
		Classifier: classifier,
		Approvals:  approvals,
		Autonomy:   autonomyService,
		Kill:       kill,
		Publisher:  publisher,
		Sessions:   sessionService,
		Steps:      stepService,
		Audit:      auditService,
		Config:     tc.agent,
	})

	// 6. Worker pool with a fast poll so queued sessions start promptly.
	queueCfg := &config.QueueConfig{
		WorkerCount:             tc.workerCount,
		MaxConcurrentSessions:   tc.workerCount,
		PollInterval:            config.Duration(50 * time.Millisecond),
		PollIntervalJitter:      config.Duration(20 * time.Millisecond),
		SessionTimeout:          config.Duration(30 * time.Second),
		GracefulShutdownTimeout: config.Duration(5 * time.Second),
		OrphanDetectionInterval: config.Duration(time.Minute),
		OrphanThreshold:         config.Duration(2 * time.Minute),
	}
	podID := fmt.Sprintf("e2e-%s", t.Name())
	pool := queue.NewWorkerPool(podID, entClient, sessionService, kill, queueCfg, exec)
	ctx := context.Background()
	require.NoError(t, pool.Start(ctx))

	// 7. HTTP server on an OS-assigned port.
	server := api.NewServer(api.Options{
		Config:    config.DefaultServerConfig(),
		DB:        db,
		Sessions:  sessionService,
		Steps:     stepService,
		Audit:     auditService,
		Servers:   serverService,
		Approvals: approvals,
		Autonomy:  autonomyService,
		Kill:      kill,
		Pool:      pool,
		MCP:       mcpManager,
		Hub:       hub,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		DB:            db,
		Ent:           entClient,
		Model:         model,
		Registry:      registry,
		Hub:           hub,
		Autonomy:      autonomyService,
		Kill:          kill,
		MCP:           mcpManager,
		Pool:          pool,
		Server:        server,
		WorkspaceRoot: workspace,
		ProjectDir:    project,
		BaseURL:       fmt.Sprintf("http://%s", addr),
		WSURL:         fmt.Sprintf("ws://%s/api/v1/ws", addr),
		t:             t,
	}

	// Reverse-creation teardown. The pool stops first so no executor is
	// publishing when the hub closes.
	t.Cleanup(func() {
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		_ = mcpManager.Close()
		hub.Close()
	})

	return app
}

// defaultAgentConfig trims the production limits down to test scale. The
// approval timeout in particular must outlive a polling HTTP client but
// not stall a failing test for a minute.
func defaultAgentConfig() *config.AgentConfig {
	return &config.AgentConfig{
		MaxIterations:        10,
		MaxDuration:          config.Duration(20 * time.Second),
		TokenBudget:          100_000,
		ApprovalTimeout:      config.Duration(5 * time.Second),
		DefaultAutonomyLevel: "L2",
	}
}

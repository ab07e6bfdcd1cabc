package e2e

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// inMemoryMCPDial returns a dial function that backs every configured
// server with a fresh in-memory MCP server exposing the given tools.
func inMemoryMCPDial(t *testing.T, handlers map[string]mcpsdk.ToolHandler) func(context.Context, models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
	t.Helper()
	schema := map[string]any{"type": "object"}

	return func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: cfg.Name, Version: "test"}, nil)
		for name, handler := range handlers {
			server.AddTool(&mcpsdk.Tool{
				Name:        name,
				Description: "test tool: " + name,
				InputSchema: schema,
			}, handler)
		}

		clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
		runCtx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)
		go func() { _ = server.Run(runCtx, serverTransport) }()

		client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "praxis-e2e", Version: "test"}, nil)
		session, err := client.Connect(ctx, clientTransport, nil)
		if err != nil {
			cancel()
			return nil, nil, err
		}
		return client, session, nil
	}
}

// ────────────────────────────────────────────────────────────
// Scenario: external server registered over the API, invoked by a plan
// ────────────────────────────────────────────────────────────

func TestE2E_ExternalToolThroughPlan(t *testing.T) {
	dial := inMemoryMCPDial(t, map[string]mcpsdk.ToolHandler{
		"get_weather": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "sunny, 21C"}},
			}, nil
		},
	})
	app := NewTestApp(t, WithMCPDial(dial))

	// Creating an enabled server dials it synchronously, so its tools are
	// registered before the response returns.
	var created struct {
		ID string `json:"id"`
	}
	status := app.postJSON(t, "/api/v1/servers", map[string]any{
		"name":      "weather",
		"transport": "stdio",
		"command":   "weather-mcp",
		"trust":     "verified",
		"enabled":   true,
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.ID)

	toolName := tools.ExternalName(created.ID, "get_weather")
	def, ok := app.Registry.Definition(toolName)
	require.True(t, ok, "external tool should be registered under its namespaced name")
	assert.Contains(t, def.Description, "[weather]")
	assert.False(t, def.RequiresApprovalDefault, "verified servers do not force the approval gate")

	// External tools classify moderate; L3 auto-executes that tier.
	app.setLevel(t, app.ProjectDir, "L3")
	app.Model.Enqueue(planResponse("Check the weather.",
		toolStep(1, toolName, map[string]any{"city": "Oslo"}),
	))

	id := app.submitTask(t, "what's the weather in Oslo?", app.ProjectDir)
	app.waitSessionState(t, id, "completed", 15*time.Second)

	steps := app.steps(t, id)
	require.Len(t, steps, 1)
	require.NotNil(t, steps[0].Result)
	assert.Contains(t, *steps[0].Result, "sunny")

	rows := app.auditEntries(t, id)
	require.Len(t, rows, 1)
	assert.Equal(t, toolName, rows[0].ToolName)
	assert.Equal(t, "auto", rows[0].ApprovalDecision)
	assert.True(t, rows[0].Success)

	// The connection outcome is persisted on the server row.
	var server struct {
		LastConnected *time.Time `json:"last_connected"`
	}
	status = app.getJSON(t, "/api/v1/servers/"+created.ID, &server)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, server.LastConnected)
}

// flakyTool fails its first invocation with a transport-class error and
// succeeds afterwards, standing in for a tool server whose stream broke
// and was rebuilt between the executor's attempts.
type flakyTool struct {
	name string

	mu    sync.Mutex
	calls int
}

func (f *flakyTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        f.name,
		Description: "Synchronize the product catalog.",
		Category:    models.CategoryNetwork,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"catalog": map[string]any{"type": "string"},
			},
		},
	}
}

func (f *flakyTool) Execute(context.Context, map[string]any, *tools.AgentContext) (*models.ToolResult, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()
	if n == 1 {
		return nil, errors.New("read tcp 10.0.0.5:443: connection reset by peer")
	}
	return &models.ToolResult{Success: true, Data: "catalog synced"}, nil
}

func (f *flakyTool) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// ────────────────────────────────────────────────────────────
// Scenario: transport failure retried by the executor
// ────────────────────────────────────────────────────────────

func TestE2E_TransportErrorRetriesAndSucceeds(t *testing.T) {
	flaky := &flakyTool{name: "sync_catalog"}
	app := NewTestApp(t, WithTool(flaky))

	app.Model.Enqueue(planResponse("Synchronize the catalog.",
		toolStep(1, "sync_catalog", map[string]any{"catalog": "products"}),
	))

	stream := app.streamEvents(t)
	id := app.submitTask(t, "sync the product catalog", app.ProjectDir)

	// The retry backs off roughly a second between attempts.
	app.waitSessionState(t, id, "completed", 20*time.Second)

	assert.Equal(t, 2, flaky.callCount())

	evs := stream.collect(id)
	assert.Equal(t, 2, countEvents(evs, models.EventToolCalled),
		"each attempt announces itself")
	assert.Equal(t, 2, countEvents(evs, models.EventToolResult))
	assert.Equal(t, 1, countEvents(evs, models.EventStepStarted))

	// One invocation, one audit entry: the retry is the same action.
	rows := app.auditEntries(t, id)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Success)
	assert.Equal(t, "auto", rows[0].ApprovalDecision)
}

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// startToolServer runs an in-memory MCP server and returns the client side
// of its transport pair. Each transport pair is single-use.
func startToolServer(t *testing.T, name string, handlers map[string]mcpsdk.ToolHandler) *mcpsdk.InMemoryTransport {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: name, Version: "test"}, nil)
	for toolName, handler := range handlers {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()
	return clientTransport
}

// dialTo returns a dial function wired to a fixed in-memory transport.
func dialTo(transport *mcpsdk.InMemoryTransport) func(context.Context, models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
	return func(ctx context.Context, _ models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "praxis-test", Version: "test"}, nil)
		session, err := client.Connect(ctx, transport, nil)
		if err != nil {
			return nil, nil, err
		}
		return client, session, nil
	}
}

func echoHandler(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(req.Params.Arguments)}},
	}, nil
}

func testManager(t *testing.T) (*Manager, *tools.Registry, *events.Subscription) {
	t.Helper()
	registry := tools.NewRegistry()
	hub := events.NewHub(32)
	sub := hub.SubscribeAll()
	m := NewManager(registry, events.NewPublisher(hub), nil, nil)
	t.Cleanup(func() {
		_ = m.Close()
		hub.Close()
	})
	return m, registry, sub
}

func stdioConfig(id, name string, trust models.TrustLevel) models.ExternalServerConfig {
	return models.ExternalServerConfig{
		ID:        id,
		Name:      name,
		Transport: models.TransportStdio,
		Command:   "unused-under-test",
		Trust:     trust,
		Enabled:   true,
	}
}

func waitEvent(t *testing.T, sub *events.Subscription, eventType models.EventType) models.AgentEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-sub.Events():
			require.True(t, ok, "subscription closed while waiting for %s", eventType)
			if ev.Type == eventType {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", eventType)
		}
	}
}

func TestConnectRegistersNamespacedTools(t *testing.T) {
	m, registry, sub := testManager(t)
	m.dial = dialTo(startToolServer(t, "github", map[string]mcpsdk.ToolHandler{
		"create_issue": echoHandler,
		"list_repos":   echoHandler,
	}))

	cfg := stdioConfig("0f9c44aa-1111-2222-3333-444455556666", "github", models.TrustUserAdded)
	require.NoError(t, m.Connect(context.Background(), cfg))

	ev := waitEvent(t, sub, events.TypeServerConnected)
	payload := ev.Data.(events.ServerConnectedPayload)
	assert.Equal(t, "github", payload.ServerName)
	assert.Equal(t, 2, payload.ToolCount)

	def, ok := registry.Definition("ext_0f9c44aa_create_issue")
	require.True(t, ok)
	assert.True(t, def.RequiresApprovalDefault, "user_added tools default to requiring approval")
	assert.Contains(t, def.Description, "[github]")

	assert.True(t, m.Connected(cfg.ID))
	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, 2, statuses[0].ToolCount)
}

func TestConnectIsIdempotent(t *testing.T) {
	m, _, _ := testManager(t)
	var dials atomic.Int32
	inner := dialTo(startToolServer(t, "s", map[string]mcpsdk.ToolHandler{"t": echoHandler}))
	m.dial = func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		dials.Add(1)
		return inner(ctx, cfg)
	}

	cfg := stdioConfig("aaaabbbb-1", "s", models.TrustVerified)
	require.NoError(t, m.Connect(context.Background(), cfg))
	require.NoError(t, m.Connect(context.Background(), cfg))
	assert.Equal(t, int32(1), dials.Load())
}

func TestConnectRejectsDisabledServer(t *testing.T) {
	m, _, _ := testManager(t)
	cfg := stdioConfig("aaaabbbb-2", "off", models.TrustVerified)
	cfg.Enabled = false
	err := m.Connect(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestCallToolThroughRegistry(t *testing.T) {
	m, registry, _ := testManager(t)
	m.dial = dialTo(startToolServer(t, "github", map[string]mcpsdk.ToolHandler{
		"create_issue": echoHandler,
		"fail": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "upstream rejected the request"}},
				IsError: true,
			}, nil
		},
	}))

	cfg := stdioConfig("12345678-abcd", "github", models.TrustVerified)
	require.NoError(t, m.Connect(context.Background(), cfg))

	res, err := registry.Execute(context.Background(), models.ToolCall{
		ID:         "c1",
		ToolName:   tools.ExternalName(cfg.ID, "create_issue"),
		Parameters: map[string]any{"title": "broken build"},
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, res.Data.(string), "broken build")
	assert.Equal(t, "c1", res.CallID)

	// Tool-reported failure comes back as an unsuccessful result, not an error.
	res, err = registry.Execute(context.Background(), models.ToolCall{
		ID:       "c2",
		ToolName: tools.ExternalName(cfg.ID, "fail"),
	}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "upstream rejected")
}

func TestDisconnectRemovesTools(t *testing.T) {
	m, registry, sub := testManager(t)
	m.dial = dialTo(startToolServer(t, "s", map[string]mcpsdk.ToolHandler{"t": echoHandler}))

	cfg := stdioConfig("deadbeef-0001", "s", models.TrustVerified)
	require.NoError(t, m.Connect(context.Background(), cfg))
	waitEvent(t, sub, events.TypeServerConnected)

	name := tools.ExternalName(cfg.ID, "t")
	_, ok := registry.Get(name)
	require.True(t, ok)

	m.Disconnect(cfg.ID)
	waitEvent(t, sub, events.TypeServerDisconnected)

	_, ok = registry.Get(name)
	assert.False(t, ok)
	assert.False(t, m.Connected(cfg.ID))
}

func TestReconnectExhaustionDeregisters(t *testing.T) {
	m, registry, sub := testManager(t)
	var dials atomic.Int32
	first := dialTo(startToolServer(t, "flaky", map[string]mcpsdk.ToolHandler{"t": echoHandler}))
	m.dial = func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		if dials.Add(1) == 1 {
			return first(ctx, cfg)
		}
		return nil, nil, errors.New("connection refused")
	}
	m.delayFn = func(int) time.Duration { return time.Millisecond }

	cfg := stdioConfig("cafe0001-9999", "flaky", models.TrustUserAdded)
	require.NoError(t, m.Connect(context.Background(), cfg))
	waitEvent(t, sub, events.TypeServerConnected)

	m.scheduleReconnect(cfg)

	ev := waitEvent(t, sub, events.TypeServerDisconnected)
	payload := ev.Data.(events.ServerDisconnectedPayload)
	assert.Contains(t, payload.Error, "exhausted")

	// Initial dial plus five reconnect attempts.
	assert.Equal(t, int32(1+ReconnectAttempts), dials.Load())

	_, ok := registry.Get(tools.ExternalName(cfg.ID, "t"))
	assert.False(t, ok)

	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Connected)
	assert.Contains(t, statuses[0].LastError, "exhausted")
}

func TestReconnectRecoversAfterTransientFailures(t *testing.T) {
	m, registry, sub := testManager(t)
	var dials atomic.Int32
	m.dial = func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		n := dials.Add(1)
		if n == 2 || n == 3 {
			return nil, nil, errors.New("connection refused")
		}
		// Fresh transport pair per successful dial.
		return dialTo(startToolServer(t, "s", map[string]mcpsdk.ToolHandler{"t": echoHandler}))(ctx, cfg)
	}
	m.delayFn = func(int) time.Duration { return time.Millisecond }

	cfg := stdioConfig("cafe0002-9999", "s", models.TrustVerified)
	require.NoError(t, m.Connect(context.Background(), cfg))
	waitEvent(t, sub, events.TypeServerConnected)

	m.scheduleReconnect(cfg)
	waitEvent(t, sub, events.TypeServerConnected)

	assert.True(t, m.Connected(cfg.ID))
	_, ok := registry.Get(tools.ExternalName(cfg.ID, "t"))
	assert.True(t, ok, "tools re-registered after recovery")
}

func TestConnectAllToleratesPartialFailure(t *testing.T) {
	m, _, _ := testManager(t)
	m.dial = func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
		if cfg.Name == "bad" {
			return nil, nil, errors.New("connection refused")
		}
		return dialTo(startToolServer(t, cfg.Name, map[string]mcpsdk.ToolHandler{"t": echoHandler}))(ctx, cfg)
	}

	connected := m.ConnectAll(context.Background(), []models.ExternalServerConfig{
		stdioConfig("11110000-a", "good", models.TrustVerified),
		stdioConfig("22220000-b", "bad", models.TrustVerified),
		func() models.ExternalServerConfig {
			c := stdioConfig("33330000-c", "off", models.TrustVerified)
			c.Enabled = false
			return c
		}(),
	})
	assert.Equal(t, 1, connected)
}

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "net failure" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

var _ net.Error = (*fakeNetError)(nil)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RecoveryAction
	}{
		{"nil", nil, NoRetry},
		{"cancelled", context.Canceled, NoRetry},
		{"deadline", context.DeadlineExceeded, NoRetry},
		{"eof", io.EOF, Reconnect},
		{"wrapped eof", fmt.Errorf("read message: %w", io.ErrUnexpectedEOF), Reconnect},
		{"connection refused", errors.New("dial tcp 127.0.0.1:9999: connection refused"), Reconnect},
		{"broken pipe", errors.New("write |1: broken pipe"), Reconnect},
		{"net timeout", &fakeNetError{timeout: true}, NoRetry},
		{"net other", &fakeNetError{timeout: false}, Reconnect},
		{"protocol error", errors.New("jsonrpc2: invalid params"), NoRetry},
		{"unknown", errors.New("tool exploded"), NoRetry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}

func TestReconnectDelaySchedule(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := reconnectDelay(0)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, time.Second)
	}
	// Far past the cap the window stays bounded by it.
	for i := 0; i < 50; i++ {
		d := reconnectDelay(10)
		assert.GreaterOrEqual(t, d, 30*time.Second)
		assert.LessOrEqual(t, d, 60*time.Second)
	}
}

// Package mcp connects external tool servers speaking the Model Context
// Protocol and surfaces their tools through the shared registry. Each
// server gets one session over a stdio subprocess or streamable HTTP;
// broken sessions are rebuilt with exponential backoff.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/metrics"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
	"github.com/praxislabs/praxis/pkg/version"
)

// connectParallelism bounds how many servers are dialed at once during
// startup.
const connectParallelism = 4

// ServerStore persists connection outcomes (last_connected, last_error)
// for external server configs. May be nil in tests.
type ServerStore interface {
	MarkConnected(ctx context.Context, serverID string, at time.Time) error
	MarkError(ctx context.Context, serverID string, msg string) error
}

// ServerStatus is the live connection state of one managed server.
type ServerStatus struct {
	ServerID  string `json:"server_id"`
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	ToolCount int    `json:"tool_count"`
	LastError string `json:"last_error,omitempty"`
}

type serverConn struct {
	cfg     models.ExternalServerConfig
	client  *mcpsdk.Client
	session *mcpsdk.ClientSession
	tools   []*mcpsdk.Tool
}

// Manager owns the sessions to all external tool servers. Thread-safe.
// On connect it discovers the server's tools and registers each into the
// shared registry under a namespaced name; on permanent failure it
// deregisters them again.
type Manager struct {
	registry  *tools.Registry
	publisher *events.Publisher
	sandbox   Sandbox
	store     ServerStore

	mu    sync.Mutex
	conns map[string]*serverConn
	// Last error per server, kept for Statuses after a conn is torn down.
	lastErrors map[string]string
	// Guards against concurrent reconnect loops for the same server.
	reconnecting map[string]bool

	// Per-server mutex serializing connect attempts.
	connectMu sync.Map // serverID → *sync.Mutex

	// dial establishes the SDK session. Overridable in tests to wire
	// in-memory transports.
	dial DialFunc

	// delayFn produces the reconnect backoff. Overridable in tests.
	delayFn func(attempt int) time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// DialFunc establishes the SDK session for one server config.
type DialFunc func(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error)

// NewManager creates a Manager. sandbox and store may be nil.
func NewManager(registry *tools.Registry, publisher *events.Publisher, sandbox Sandbox, store ServerStore) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		registry:     registry,
		publisher:    publisher,
		sandbox:      sandbox,
		store:        store,
		conns:        make(map[string]*serverConn),
		lastErrors:   make(map[string]string),
		reconnecting: make(map[string]bool),
		delayFn:      reconnectDelay,
		baseCtx:      ctx,
		cancel:       cancel,
		logger:       slog.Default(),
	}
	m.dial = m.dialTransport
	return m
}

// NewTestManager creates a Manager whose dialing is replaced wholesale and
// whose reconnect backoff collapses to a millisecond. End-to-end tests use
// it to back external servers with in-memory transports.
func NewTestManager(registry *tools.Registry, publisher *events.Publisher, store ServerStore, dial DialFunc) *Manager {
	m := NewManager(registry, publisher, nil, store)
	m.dial = dial
	m.delayFn = func(int) time.Duration { return time.Millisecond }
	return m
}

func (m *Manager) dialTransport(ctx context.Context, cfg models.ExternalServerConfig) (*mcpsdk.Client, *mcpsdk.ClientSession, error) {
	transport, err := createTransport(cfg, m.sandbox)
	if err != nil {
		return nil, nil, fmt.Errorf("create transport for %q: %w", cfg.Name, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it holds resources (stdio child process).
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, nil, fmt.Errorf("connect to %q: %w", cfg.Name, err)
	}
	return client, session, nil
}

// Connect opens a session to one server, discovers its tools, and
// registers them. Returns nil if the server is already connected.
func (m *Manager) Connect(ctx context.Context, cfg models.ExternalServerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Enabled {
		return fmt.Errorf("server %q is disabled", cfg.Name)
	}

	muI, _ := m.connectMu.LoadOrStore(cfg.ID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	m.mu.Lock()
	_, exists := m.conns[cfg.ID]
	m.mu.Unlock()
	if exists {
		return nil
	}

	client, session, err := m.dial(ctx, cfg)
	if err != nil {
		m.recordError(ctx, cfg.ID, err)
		return err
	}

	listCtx, cancel := context.WithTimeout(ctx, ListToolsTimeout)
	defer cancel()
	listed, err := session.ListTools(listCtx, nil)
	if err != nil {
		_ = session.Close()
		err = fmt.Errorf("list tools from %q: %w", cfg.Name, err)
		m.recordError(ctx, cfg.ID, err)
		return err
	}

	registered := 0
	for _, tool := range listed.Tools {
		name, regErr := m.registry.RegisterExternal(cfg.ID, cfg.Name, cfg.Trust, &externalTool{
			manager:  m,
			serverID: cfg.ID,
			name:     tool.Name,
			def:      definitionFor(cfg, tool),
		})
		if regErr != nil {
			m.logger.Warn("Skipping external tool",
				"server", cfg.Name, "tool", tool.Name, "error", regErr)
			continue
		}
		m.logger.Debug("Registered external tool", "server", cfg.Name, "tool", name)
		registered++
	}

	m.mu.Lock()
	m.conns[cfg.ID] = &serverConn{cfg: cfg, client: client, session: session, tools: listed.Tools}
	delete(m.lastErrors, cfg.ID)
	m.mu.Unlock()

	if m.store != nil {
		if serr := m.store.MarkConnected(ctx, cfg.ID, time.Now()); serr != nil {
			m.logger.Warn("Failed to persist server connection time",
				"server", cfg.Name, "error", serr)
		}
	}
	if m.publisher != nil {
		m.publisher.PublishServerConnected(cfg.ID, cfg.Name, registered)
	}
	m.logger.Info("External tool server connected",
		"server", cfg.Name,
		"transport", cfg.Transport,
		"tools", registered)
	return nil
}

// ConnectAll dials every enabled server concurrently. Individual failures
// are logged and recorded, never fatal: a runtime with some tools beats no
// runtime. Returns the number of servers connected.
func (m *Manager) ConnectAll(ctx context.Context, cfgs []models.ExternalServerConfig) int {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(connectParallelism)

	var mu sync.Mutex
	connected := 0
	for _, cfg := range cfgs {
		if !cfg.Enabled {
			continue
		}
		g.Go(func() error {
			if err := m.Connect(gctx, cfg); err != nil {
				m.logger.Warn("External tool server failed to connect",
					"server", cfg.Name, "error", err)
				return nil
			}
			mu.Lock()
			connected++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return connected
}

// Disconnect closes a server's session and removes its tools from the
// registry.
func (m *Manager) Disconnect(serverID string) {
	m.mu.Lock()
	conn, ok := m.conns[serverID]
	if ok {
		delete(m.conns, serverID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	_ = conn.session.Close()
	removed := m.registry.UnregisterServer(serverID)
	if m.publisher != nil {
		m.publisher.PublishServerDisconnected(serverID, conn.cfg.Name, "")
	}
	m.logger.Info("External tool server disconnected",
		"server", conn.cfg.Name, "tools_removed", removed)
}

// Reconnect tears down and re-dials one server. Used by the API's manual
// reconnect endpoint and after config edits.
func (m *Manager) Reconnect(ctx context.Context, cfg models.ExternalServerConfig) error {
	m.Disconnect(cfg.ID)
	return m.Connect(ctx, cfg)
}

// CallTool invokes a tool on a connected server. On errors that indicate a
// broken stream it kicks off a background reconnect and returns the error
// without replaying the call; the executor's retry loop re-issues it once
// the session is back.
func (m *Manager) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	m.mu.Lock()
	conn, ok := m.conns[serverID]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	callCtx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	result, err := conn.session.CallTool(callCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		if ClassifyError(err) == Reconnect {
			m.logger.Warn("External server stream broken, scheduling reconnect",
				"server", conn.cfg.Name, "tool", toolName, "error", err)
			m.scheduleReconnect(conn.cfg)
		}
		return nil, fmt.Errorf("call %s on %q: %w", toolName, conn.cfg.Name, err)
	}
	return result, nil
}

// scheduleReconnect starts the backoff loop for a server unless one is
// already running.
func (m *Manager) scheduleReconnect(cfg models.ExternalServerConfig) {
	m.mu.Lock()
	if m.reconnecting[cfg.ID] {
		m.mu.Unlock()
		return
	}
	m.reconnecting[cfg.ID] = true
	m.mu.Unlock()

	// Drop the dead session first so Connect actually re-dials.
	m.mu.Lock()
	if conn, ok := m.conns[cfg.ID]; ok {
		_ = conn.session.Close()
		delete(m.conns, cfg.ID)
	}
	m.mu.Unlock()

	go m.reconnectLoop(cfg)
}

func (m *Manager) reconnectLoop(cfg models.ExternalServerConfig) {
	defer func() {
		m.mu.Lock()
		delete(m.reconnecting, cfg.ID)
		m.mu.Unlock()
	}()

	var lastErr error
	for attempt := 0; attempt < ReconnectAttempts; attempt++ {
		delay := m.delayFn(attempt)
		select {
		case <-m.baseCtx.Done():
			return
		case <-time.After(delay):
		}

		metrics.ServerReconnects.WithLabelValues(cfg.Name).Inc()
		m.logger.Info("Reconnecting to external tool server",
			"server", cfg.Name,
			"attempt", attempt+1,
			"max_attempts", ReconnectAttempts)

		if err := m.Connect(m.baseCtx, cfg); err != nil {
			lastErr = err
			continue
		}
		return
	}

	// Exhausted: the server is gone until an operator intervenes.
	msg := "reconnect attempts exhausted"
	if lastErr != nil {
		msg = fmt.Sprintf("reconnect attempts exhausted: %s", lastErr)
	}
	removed := m.registry.UnregisterServer(cfg.ID)
	m.recordError(m.baseCtx, cfg.ID, fmt.Errorf("%s", msg))
	if m.publisher != nil {
		m.publisher.PublishServerDisconnected(cfg.ID, cfg.Name, msg)
	}
	m.logger.Error("External tool server deregistered after failed reconnects",
		"server", cfg.Name,
		"tools_removed", removed,
		"error", msg)
}

func (m *Manager) recordError(ctx context.Context, serverID string, err error) {
	m.mu.Lock()
	m.lastErrors[serverID] = err.Error()
	m.mu.Unlock()
	if m.store != nil {
		if serr := m.store.MarkError(ctx, serverID, err.Error()); serr != nil {
			m.logger.Warn("Failed to persist server error", "server", serverID, "error", serr)
		}
	}
}

// Connected reports whether the server has a live session.
func (m *Manager) Connected(serverID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.conns[serverID]
	return ok
}

// Statuses returns the live state of every server the manager has seen,
// sorted by name for stable API output.
func (m *Manager) Statuses() []ServerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]ServerStatus)
	for id, conn := range m.conns {
		seen[id] = ServerStatus{
			ServerID:  id,
			Name:      conn.cfg.Name,
			Connected: true,
			ToolCount: len(conn.tools),
		}
	}
	for id, msg := range m.lastErrors {
		if _, ok := seen[id]; !ok {
			seen[id] = ServerStatus{ServerID: id, LastError: msg}
		}
	}

	out := make([]ServerStatus, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Close shuts down every session and stops pending reconnect loops.
func (m *Manager) Close() error {
	m.cancel()

	m.mu.Lock()
	conns := m.conns
	m.conns = make(map[string]*serverConn)
	m.mu.Unlock()

	var firstErr error
	for id, conn := range conns {
		if err := conn.session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
		m.registry.UnregisterServer(id)
	}
	return firstErr
}

// definitionFor converts an MCP tool declaration into the registry's shape.
// The registry applies namespacing and the trust-based approval default.
func definitionFor(cfg models.ExternalServerConfig, tool *mcpsdk.Tool) models.ToolDefinition {
	def := models.ToolDefinition{
		Name:        tool.Name,
		Description: tool.Description,
		Category:    cfg.Category,
		Parameters:  schemaToMap(tool.InputSchema),
	}
	if def.Category == "" {
		def.Category = models.CategoryExternal
	}
	return def
}

// schemaToMap converts the SDK's schema value into the plain map the
// registry validates against.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return nil
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Unmarshalable tool input schema", "error", err)
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// externalTool adapts one remote tool to the registry's Tool interface.
type externalTool struct {
	manager  *Manager
	serverID string
	// name is the un-namespaced tool name the server knows.
	name string
	def  models.ToolDefinition
}

func (t *externalTool) Definition() models.ToolDefinition { return t.def }

// Execute routes the call through the manager's session. Infrastructure
// failures come back as Go errors; tool-reported failures come back as an
// unsuccessful result.
func (t *externalTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	result, err := t.manager.CallTool(ctx, t.serverID, t.name, params)
	if err != nil {
		return nil, err
	}

	content := extractTextContent(result)
	if result.IsError {
		return &models.ToolResult{Success: false, Error: content}, nil
	}
	return &models.ToolResult{Success: true, Data: content}, nil
}

// extractTextContent concatenates the text items of a call result.
// Non-text content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("External tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

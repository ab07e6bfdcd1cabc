package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// SubscribeAllKey is the session_id value a client sends to subscribe to
// events from every session instead of a single one.
const SubscribeAllKey = "*"

// ClientMessage is what a websocket client sends to manage its
// subscriptions.
type ClientMessage struct {
	Action    string `json:"action"`               // "subscribe", "unsubscribe", "ping"
	SessionID string `json:"session_id,omitempty"` // session ID or "*" for all sessions
}

// ConnectionManager fans hub events out to websocket clients. Each process
// has one instance; every accepted connection registers here and manages
// its per-session subscriptions through the client message protocol.
type ConnectionManager struct {
	hub *Hub

	connections map[string]*Connection
	mu          sync.RWMutex

	// Write timeout for websocket sends.
	writeTimeout time.Duration
}

// Connection represents a single websocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads
// and writes (subscribe, unsubscribe, the deferred cleanup) happen on the
// single goroutine that owns the connection: HandleConnection's read loop.
// Pump goroutines only touch their own *Subscription, never the map.
type Connection struct {
	ID   string
	Conn *websocket.Conn

	subscriptions map[string]*Subscription // key: session ID or SubscribeAllKey
	pumps         sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewConnectionManager creates a manager that serves events from hub.
func NewConnectionManager(hub *Hub, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		hub:          hub,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single websocket connection.
// Called by the websocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]*Subscription),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop, processes client messages until the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid websocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(c, &msg)
	}
}

// ActiveConnections returns the count of active websocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.SessionID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "session_id is required for subscribe"})
			return
		}
		m.subscribe(c, msg.SessionID)
		m.sendJSON(c, map[string]string{
			"type":       "subscription.confirmed",
			"session_id": msg.SessionID,
		})

	case "unsubscribe":
		if msg.SessionID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "session_id is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.SessionID)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})

	default:
		m.sendJSON(c, map[string]string{"type": "error", "message": "unknown action"})
	}
}

// subscribe attaches the connection to a session's event stream and starts
// a pump goroutine forwarding hub events to the socket. Subscribing twice
// to the same key is a no-op.
func (m *ConnectionManager) subscribe(c *Connection, sessionID string) {
	if _, exists := c.subscriptions[sessionID]; exists {
		return
	}

	var sub *Subscription
	if sessionID == SubscribeAllKey {
		sub = m.hub.SubscribeAll()
	} else {
		sub = m.hub.Subscribe(sessionID)
	}
	c.subscriptions[sessionID] = sub

	// The pump ends when the subscription closes: explicit unsubscribe,
	// connection teardown, or the hub retiring a session-scoped
	// subscription after its terminal event.
	c.pumps.Add(1)
	go func() {
		defer c.pumps.Done()
		for ev := range sub.Events() {
			m.sendJSON(c, ev)
		}
	}()
}

// unsubscribe detaches the connection from a session's event stream. The
// closed subscription channel ends the pump goroutine.
func (m *ConnectionManager) unsubscribe(c *Connection, sessionID string) {
	sub, exists := c.subscriptions[sessionID]
	if !exists {
		return
	}
	delete(c.subscriptions, sessionID)
	sub.Close()
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection closes all subscriptions, waits for their pumps,
// and removes the connection.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for key := range c.subscriptions {
		m.unsubscribe(c, key)
	}
	c.pumps.Wait()

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
// Writes are safe from multiple pump goroutines; the websocket library
// serializes frames internally.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal websocket message",
			"connection_id", c.ID, "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	if err := c.Conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Warn("Failed to send websocket message",
			"connection_id", c.ID, "error", err)
	}
}

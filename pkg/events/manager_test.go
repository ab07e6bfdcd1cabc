package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

// wsHarness dials a real websocket against a ConnectionManager serving a
// live hub.
type wsHarness struct {
	t    *testing.T
	hub  *Hub
	mgr  *ConnectionManager
	conn *websocket.Conn
	ctx  context.Context
}

func newWSHarness(t *testing.T) *wsHarness {
	t.Helper()

	hub := NewHub(DefaultQueueSize)
	t.Cleanup(hub.Close)
	mgr := NewConnectionManager(hub, 5*time.Second)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		mgr.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	h := &wsHarness{t: t, hub: hub, mgr: mgr, conn: conn, ctx: ctx}

	greeting := h.read()
	require.Equal(t, "connection.established", greeting["type"])
	require.NotEmpty(t, greeting["connection_id"])
	return h
}

func (h *wsHarness) read() map[string]any {
	h.t.Helper()
	_, data, err := h.conn.Read(h.ctx)
	require.NoError(h.t, err)
	var msg map[string]any
	require.NoError(h.t, json.Unmarshal(data, &msg))
	return msg
}

func (h *wsHarness) send(msg ClientMessage) {
	h.t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(h.t, err)
	require.NoError(h.t, h.conn.Write(h.ctx, websocket.MessageText, data))
}

func (h *wsHarness) subscribe(sessionID string) {
	h.t.Helper()
	h.send(ClientMessage{Action: "subscribe", SessionID: sessionID})
	msg := h.read()
	require.Equal(h.t, "subscription.confirmed", msg["type"])
	require.Equal(h.t, sessionID, msg["session_id"])
}

// pingPong round-trips a ping. Because the read loop handles messages in
// order, a pong proves every earlier client message has been processed.
func (h *wsHarness) pingPong() {
	h.t.Helper()
	h.send(ClientMessage{Action: "ping"})
	msg := h.read()
	require.Equal(h.t, "pong", msg["type"])
}

func (h *wsHarness) publish(sessionID string, typ models.EventType) {
	h.hub.Publish(models.AgentEvent{Type: typ, SessionID: sessionID, Timestamp: time.Now()})
}

func TestConnectionLifecycle(t *testing.T) {
	h := newWSHarness(t)

	assert.Equal(t, 1, h.mgr.ActiveConnections())
	h.pingPong()

	require.NoError(t, h.conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		return h.mgr.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubscribeReceivesSessionEvents(t *testing.T) {
	h := newWSHarness(t)
	h.subscribe("sess-1")

	// The other session's event must never reach this subscriber.
	h.publish("sess-2", models.EventStepStarted)
	h.publish("sess-1", models.EventStepCompleted)

	msg := h.read()
	assert.Equal(t, string(models.EventStepCompleted), msg["type"])
	assert.Equal(t, "sess-1", msg["session_id"])
}

func TestSubscribeAllReceivesEverySession(t *testing.T) {
	h := newWSHarness(t)
	h.subscribe(SubscribeAllKey)

	h.publish("sess-a", models.EventStateChange)
	h.publish("sess-b", models.EventStateChange)

	first := h.read()
	second := h.read()
	assert.Equal(t, "sess-a", first["session_id"])
	assert.Equal(t, "sess-b", second["session_id"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := newWSHarness(t)
	h.subscribe("sess-1")

	h.send(ClientMessage{Action: "unsubscribe", SessionID: "sess-1"})
	h.pingPong()

	h.publish("sess-1", models.EventStepStarted)
	h.pingPong()
}

func TestTerminalEventRetiresSubscription(t *testing.T) {
	h := newWSHarness(t)
	h.subscribe("sess-1")

	h.publish("sess-1", models.EventCompleted)
	msg := h.read()
	assert.Equal(t, string(models.EventCompleted), msg["type"])

	// The hub retires session subscriptions after their terminal event;
	// later publishes for the session go nowhere.
	require.Eventually(t, func() bool {
		return h.hub.SubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	h.publish("sess-1", models.EventStepStarted)
	h.pingPong()
}

func TestSubscribeRequiresSessionID(t *testing.T) {
	h := newWSHarness(t)

	h.send(ClientMessage{Action: "subscribe"})
	msg := h.read()
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "session_id")
}

func TestUnknownActionReportsError(t *testing.T) {
	h := newWSHarness(t)

	h.send(ClientMessage{Action: "replay"})
	msg := h.read()
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "unknown action")
}

func TestMalformedMessageIgnored(t *testing.T) {
	h := newWSHarness(t)

	require.NoError(t, h.conn.Write(h.ctx, websocket.MessageText, []byte("not json")))
	h.pingPong()
}

func TestDisconnectClosesSubscriptions(t *testing.T) {
	h := newWSHarness(t)
	h.subscribe("sess-1")
	h.subscribe(SubscribeAllKey)

	require.NoError(t, h.conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return h.mgr.ActiveConnections() == 0 && h.hub.SubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

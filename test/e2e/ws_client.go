package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

// wsEvent is one agent event as it crosses the websocket, payload left as
// raw JSON so scenarios decode only what they assert on.
type wsEvent struct {
	Type      models.EventType `json:"type"`
	SessionID string           `json:"session_id"`
	Data      json.RawMessage  `json:"data,omitempty"`
}

// eventStream is a live websocket subscription to the event feed.
type eventStream struct {
	t    *testing.T
	conn *websocket.Conn
	ctx  context.Context
}

// streamEvents dials the websocket endpoint and subscribes to every
// session. Scenarios open the stream before submitting their task so no
// event can slip past.
func (app *TestApp) streamEvents(t *testing.T) *eventStream {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, app.WSURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	s := &eventStream{t: t, conn: conn, ctx: ctx}
	greeting := s.readRaw()
	require.Equal(t, "connection.established", greeting["type"])

	s.send(map[string]string{"action": "subscribe", "session_id": "*"})
	confirm := s.readRaw()
	require.Equal(t, "subscription.confirmed", confirm["type"])
	return s
}

func (s *eventStream) send(msg any) {
	s.t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(s.t, err)
	require.NoError(s.t, s.conn.Write(s.ctx, websocket.MessageText, data))
}

func (s *eventStream) readRaw() map[string]any {
	s.t.Helper()
	_, data, err := s.conn.Read(s.ctx)
	require.NoError(s.t, err)
	var msg map[string]any
	require.NoError(s.t, json.Unmarshal(data, &msg))
	return msg
}

// collect reads until the session's terminal event arrives and returns
// that session's events in delivery order.
func (s *eventStream) collect(sessionID string) []wsEvent {
	s.t.Helper()
	var out []wsEvent
	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		readCtx, cancel := context.WithDeadline(s.ctx, deadline)
		_, data, err := s.conn.Read(readCtx)
		cancel()
		require.NoError(s.t, err, "stream ended before the terminal event; saw %v", eventTypes(out))

		var ev wsEvent
		require.NoError(s.t, json.Unmarshal(data, &ev))
		if ev.SessionID != sessionID || ev.Type == "" {
			continue
		}
		out = append(out, ev)
		switch ev.Type {
		case models.EventCompleted, models.EventCancelled, models.EventError:
			return out
		}
	}
	s.t.Fatalf("no terminal event for session %s; saw %v", sessionID, eventTypes(out))
	return nil
}

func eventTypes(evs []wsEvent) []models.EventType {
	out := make([]models.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func countEvents(evs []wsEvent, typ models.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// requireEventOrder checks that want appears as an ordered subsequence of
// the observed event types.
func requireEventOrder(t *testing.T, evs []wsEvent, want ...models.EventType) {
	t.Helper()
	types := eventTypes(evs)
	i := 0
	for _, typ := range types {
		if i < len(want) && typ == want[i] {
			i++
		}
	}
	if i != len(want) {
		t.Fatalf("missing %s in event order %v", want[i], types)
	}
}

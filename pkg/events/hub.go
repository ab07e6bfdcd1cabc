// Package events provides the in-process event bus: one producer per
// session, N subscribers, bounded per-subscriber queues.
//
// Delivery rules:
//   - Publish never blocks the producer. A subscriber whose queue is full
//     is dropped from the hub; surviving subscribers keep receiving.
//   - Per-session events arrive in publish order on every subscription.
//   - A session-scoped subscription closes itself after a terminal event
//     (completed, cancelled, error) has been enqueued: the subscriber
//     drains the remaining buffer and then sees the channel close.
//   - Hub-wide subscriptions (sessionID "") observe every event, including
//     internal server lifecycle events, and never auto-close.
package events

import (
	"log/slog"
	"sync"

	"github.com/praxislabs/praxis/pkg/metrics"
	"github.com/praxislabs/praxis/pkg/models"
)

// DefaultQueueSize is the per-subscriber buffer used when NewHub is given
// a non-positive capacity.
const DefaultQueueSize = 100

// Subscription is one subscriber's handle on the hub. Events arrive on
// Events() in publish order; Close is idempotent.
type Subscription struct {
	sessionID string // "" subscribes to all sessions
	ch        chan models.AgentEvent
	hub       *Hub
	closed    bool // guarded by hub.mu
}

// Events returns the receive channel. It is closed when the subscription
// ends (explicit Close, terminal event, overflow drop, or hub shutdown).
func (s *Subscription) Events() <-chan models.AgentEvent {
	return s.ch
}

// Close removes the subscription from the hub. Buffered events remain
// readable until the channel is drained.
func (s *Subscription) Close() {
	s.hub.unsubscribe(s)
}

// Hub broadcasts AgentEvents to subscribers.
type Hub struct {
	mu       sync.Mutex
	subs     map[*Subscription]struct{}
	capacity int
	closed   bool
}

// NewHub creates a hub with the given per-subscriber queue capacity.
func NewHub(capacity int) *Hub {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Hub{
		subs:     make(map[*Subscription]struct{}),
		capacity: capacity,
	}
}

// Subscribe returns a subscription scoped to one session's events.
func (h *Hub) Subscribe(sessionID string) *Subscription {
	return h.subscribe(sessionID)
}

// SubscribeAll returns a subscription that observes every event on the hub.
func (h *Hub) SubscribeAll() *Subscription {
	return h.subscribe("")
}

func (h *Hub) subscribe(sessionID string) *Subscription {
	sub := &Subscription{
		sessionID: sessionID,
		ch:        make(chan models.AgentEvent, h.capacity),
		hub:       h,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	h.subs[sub] = struct{}{}
	return sub
}

// Publish delivers the event to every matching subscriber without blocking.
// Subscribers that cannot accept the event are dropped.
func (h *Hub) Publish(ev models.AgentEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for sub := range h.subs {
		if sub.sessionID != "" && sub.sessionID != ev.SessionID {
			continue
		}
		select {
		case sub.ch <- ev:
			if sub.sessionID != "" && ev.Type.IsTerminal() {
				h.removeLocked(sub)
			}
		default:
			slog.Warn("Dropping slow event subscriber",
				"session_id", sub.sessionID,
				"queue_capacity", h.capacity,
				"event_type", ev.Type)
			metrics.EventsDropped.Inc()
			h.removeLocked(sub)
		}
	}
}

// Close shuts the hub down and closes every remaining subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		h.removeLocked(sub)
	}
}

// SubscriberCount reports the number of live subscriptions (for health).
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

// removeLocked deletes the subscription and closes its channel. Callers
// hold h.mu, which also serializes all sends, so closing here cannot race
// a send.
func (h *Hub) removeLocked(sub *Subscription) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(h.subs, sub)
	close(sub.ch)
}

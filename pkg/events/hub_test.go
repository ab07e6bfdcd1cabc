package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func makeEvent(sessionID string, t models.EventType) models.AgentEvent {
	return models.AgentEvent{
		Type:      t,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}

func TestHubDeliversInPublishOrder(t *testing.T) {
	hub := NewHub(50)
	defer hub.Close()

	sub := hub.Subscribe("s1")

	for i := 0; i < 10; i++ {
		ev := makeEvent("s1", models.EventStepStarted)
		ev.Data = StepStartedPayload{StepID: i}
		hub.Publish(ev)
	}

	for i := 0; i < 10; i++ {
		select {
		case ev := <-sub.Events():
			require.Equal(t, models.EventStepStarted, ev.Type)
			assert.Equal(t, i, ev.Data.(StepStartedPayload).StepID)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestHubSessionScoping(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()

	s1 := hub.Subscribe("s1")
	s2 := hub.Subscribe("s2")

	hub.Publish(makeEvent("s1", models.EventStepStarted))

	select {
	case ev := <-s1.Events():
		assert.Equal(t, "s1", ev.SessionID)
	case <-time.After(time.Second):
		t.Fatal("s1 subscriber did not receive its event")
	}

	select {
	case ev := <-s2.Events():
		t.Fatalf("s2 subscriber received foreign event %v", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubFullQueueDropsOnlyThatSubscriber(t *testing.T) {
	hub := NewHub(2)
	defer hub.Close()

	slow := hub.Subscribe("s1")
	healthy := hub.Subscribe("s1")

	// Fill both queues, then drain only the healthy one.
	hub.Publish(makeEvent("s1", models.EventStepStarted))
	hub.Publish(makeEvent("s1", models.EventStepCompleted))
	<-healthy.Events()
	<-healthy.Events()

	// Third publish overflows the slow subscriber.
	hub.Publish(makeEvent("s1", models.EventToolCalled))

	// Healthy subscriber still receives the event that killed the slow one.
	select {
	case ev := <-healthy.Events():
		assert.Equal(t, models.EventToolCalled, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("healthy subscriber lost an event")
	}

	// Slow subscriber can drain its buffer, then sees the channel close.
	<-slow.Events()
	<-slow.Events()
	_, open := <-slow.Events()
	assert.False(t, open, "overflowed subscriber should be closed")
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubTerminalEventAutoClosesSessionSubscription(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()

	sub := hub.Subscribe("s1")
	hub.Publish(makeEvent("s1", models.EventStepCompleted))
	hub.Publish(makeEvent("s1", models.EventCompleted))

	// Both events are drained, then the channel closes.
	ev, open := <-sub.Events()
	require.True(t, open)
	assert.Equal(t, models.EventStepCompleted, ev.Type)

	ev, open = <-sub.Events()
	require.True(t, open)
	assert.Equal(t, models.EventCompleted, ev.Type)

	_, open = <-sub.Events()
	assert.False(t, open, "subscription should close after terminal event")
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubGlobalSubscriptionSurvivesTerminalEvents(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()

	all := hub.SubscribeAll()

	hub.Publish(makeEvent("s1", models.EventCompleted))
	hub.Publish(makeEvent("s2", models.EventCancelled))

	for _, want := range []string{"s1", "s2"} {
		select {
		case ev := <-all.Events():
			assert.Equal(t, want, ev.SessionID)
		case <-time.After(time.Second):
			t.Fatal("global subscriber missed an event")
		}
	}
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubExplicitCloseIsIdempotent(t *testing.T) {
	hub := NewHub(10)
	defer hub.Close()

	sub := hub.Subscribe("s1")
	sub.Close()
	sub.Close()

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubSubscribeAfterCloseReturnsClosedChannel(t *testing.T) {
	hub := NewHub(10)
	hub.Close()

	sub := hub.Subscribe("s1")
	_, open := <-sub.Events()
	assert.False(t, open)

	// Publishing into a closed hub is a no-op.
	hub.Publish(makeEvent("s1", models.EventError))
}

func TestHubCapacityRoundTrip(t *testing.T) {
	// Publishing N events to a subscriber with capacity >= N loses nothing.
	const n = 100
	hub := NewHub(n)
	defer hub.Close()

	sub := hub.Subscribe("s1")
	for i := 0; i < n; i++ {
		ev := makeEvent("s1", models.EventToolResult)
		ev.Data = ToolResultPayload{CallID: fmt.Sprintf("c%d", i)}
		hub.Publish(ev)
	}
	for i := 0; i < n; i++ {
		ev := <-sub.Events()
		require.Equal(t, fmt.Sprintf("c%d", i), ev.Data.(ToolResultPayload).CallID)
	}
	assert.Equal(t, 1, hub.SubscriberCount())
}

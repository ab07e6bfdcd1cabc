package killswitch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchTriggerAndReset(t *testing.T) {
	s := New()

	triggered, reason := s.Triggered()
	assert.False(t, triggered)
	assert.Empty(t, reason)

	s.Trigger("user pressed stop")
	triggered, reason = s.Triggered()
	assert.True(t, triggered)
	assert.Equal(t, "user pressed stop", reason)
	assert.False(t, s.TriggeredAt().IsZero())

	s.Reset()
	triggered, _ = s.Triggered()
	assert.False(t, triggered)
	assert.True(t, s.TriggeredAt().IsZero())
}

func TestSwitchFirstReasonWins(t *testing.T) {
	s := New()
	s.Trigger("first")
	s.Trigger("second")
	_, reason := s.Triggered()
	assert.Equal(t, "first", reason)
}

func TestSwitchConcurrentTriggers(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Trigger("race")
		}()
	}
	wg.Wait()
	triggered, reason := s.Triggered()
	assert.True(t, triggered)
	assert.Equal(t, "race", reason)
}

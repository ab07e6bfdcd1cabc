// Package killswitch provides the process-wide emergency stop signal.
//
// Anything may trigger it: a signal handler, the HTTP API, a keyboard
// shortcut relayed by a UI. The executor polls it at the top of every step
// loop iteration and again after each in-flight step completes, so a trip
// takes effect within one step boundary. It is reset at session start and
// session end.
package killswitch

import (
	"sync"
	"time"
)

// Switch is the cross-goroutine kill signal. The zero value is armed and
// untriggered.
type Switch struct {
	mu          sync.Mutex
	triggered   bool
	reason      string
	triggeredAt time.Time
}

// New returns an untriggered switch.
func New() *Switch {
	return &Switch{}
}

// Trigger trips the switch. The first reason wins; later triggers while
// already tripped are ignored.
func (s *Switch) Trigger(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.triggered {
		return
	}
	s.triggered = true
	s.reason = reason
	s.triggeredAt = time.Now()
}

// Triggered reports whether the switch is tripped and, if so, why.
func (s *Switch) Triggered() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggered, s.reason
}

// TriggeredAt returns when the switch tripped (zero time if it has not).
func (s *Switch) TriggeredAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggeredAt
}

// Reset re-arms the switch.
func (s *Switch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggered = false
	s.reason = ""
	s.triggeredAt = time.Time{}
}

// Package budget tracks per-session token consumption against a hard cap.
package budget

import (
	"sync"
)

// DefaultWarnFraction is the consumed fraction at which IsWarning trips.
const DefaultWarnFraction = 0.8

// Budget is a monotonic token counter with a hard ceiling. One Budget
// exists per session and is never persisted. Safe for concurrent use:
// providers report usage from stream callbacks while the executor polls
// CanProceed between steps.
type Budget struct {
	mu           sync.Mutex
	maxTotal     int
	usedInput    int
	usedOutput   int
	warnFraction float64
}

// New creates a budget with the given ceiling. warnFraction <= 0 falls back
// to DefaultWarnFraction.
func New(maxTotal int, warnFraction float64) *Budget {
	if warnFraction <= 0 {
		warnFraction = DefaultWarnFraction
	}
	return &Budget{maxTotal: maxTotal, warnFraction: warnFraction}
}

// Consume adds token usage. Counters only grow; negative deltas are ignored.
func (b *Budget) Consume(input, output int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if input > 0 {
		b.usedInput += input
	}
	if output > 0 {
		b.usedOutput += output
	}
}

// Used returns the input and output counters.
func (b *Budget) Used() (input, output int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usedInput, b.usedOutput
}

// Remaining returns max_total minus total consumption, floored at zero.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	remaining := b.maxTotal - b.usedInput - b.usedOutput
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MaxTotal returns the configured ceiling.
func (b *Budget) MaxTotal() int {
	return b.maxTotal
}

// CanProceed reports whether total consumption is still below the ceiling.
// Exactly at the ceiling counts as exhausted.
func (b *Budget) CanProceed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usedInput+b.usedOutput < b.maxTotal
}

// IsWarning reports whether consumption has reached the warn fraction of
// the ceiling.
func (b *Budget) IsWarning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float64(b.usedInput+b.usedOutput) >= b.warnFraction*float64(b.maxTotal)
}

package budget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetConsumeAndRemaining(t *testing.T) {
	b := New(1000, 0)

	b.Consume(100, 50)
	in, out := b.Used()
	assert.Equal(t, 100, in)
	assert.Equal(t, 50, out)
	assert.Equal(t, 850, b.Remaining())
	assert.True(t, b.CanProceed())
	assert.False(t, b.IsWarning())
}

func TestBudgetWarnsAtEightyPercent(t *testing.T) {
	b := New(1000, 0)

	b.Consume(700, 99)
	assert.False(t, b.IsWarning())

	b.Consume(0, 1) // exactly 0.8 * max
	assert.True(t, b.IsWarning())
	assert.True(t, b.CanProceed())
}

func TestBudgetExhaustedAtExactlyMax(t *testing.T) {
	b := New(1000, 0)

	b.Consume(999, 0)
	assert.True(t, b.CanProceed())

	b.Consume(0, 1)
	assert.False(t, b.CanProceed())
	assert.Equal(t, 0, b.Remaining())

	// Overshoot never goes negative.
	b.Consume(50, 50)
	assert.Equal(t, 0, b.Remaining())
}

func TestBudgetIgnoresNegativeDeltas(t *testing.T) {
	b := New(100, 0)
	b.Consume(-10, -5)
	in, out := b.Used()
	assert.Zero(t, in)
	assert.Zero(t, out)
}

func TestBudgetConcurrentConsume(t *testing.T) {
	b := New(100000, 0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Consume(10, 5)
		}()
	}
	wg.Wait()
	in, out := b.Used()
	assert.Equal(t, 1000, in)
	assert.Equal(t, 500, out)
}

func TestEstimateTokensNeverZeroForText(t *testing.T) {
	assert.Zero(t, EstimateTokens(""))
	assert.Greater(t, EstimateTokens("hello world"), 0)
	long := make([]byte, 4000)
	for i := range long {
		long[i] = 'a'
	}
	assert.Greater(t, EstimateTokens(string(long)), 100)
}

func TestTruncateShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
}

package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff_GrowsAndCaps(t *testing.T) {
	eb := &ExponentialBackoff{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0, // deterministic for the test
	}

	assert.Equal(t, 100*time.Millisecond, eb.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, eb.NextDelay(1))
	assert.Equal(t, 400*time.Millisecond, eb.NextDelay(2))
	// Capped at MaxDelay
	assert.Equal(t, time.Second, eb.NextDelay(10))
}

func TestExponentialBackoff_JitterStaysInBounds(t *testing.T) {
	eb := DefaultExponentialBackoff()

	for attempt := 0; attempt < 6; attempt++ {
		delay := eb.NextDelay(attempt)
		assert.Greater(t, delay, time.Duration(0))
		assert.LessOrEqual(t, delay, eb.MaxDelay+time.Duration(float64(eb.MaxDelay)*eb.Jitter))
	}
}

func TestExponentialBackoff_NegativeAttempt(t *testing.T) {
	eb := DefaultExponentialBackoff()
	assert.Equal(t, eb.BaseDelay, eb.NextDelay(-1))
}

func TestFixedBackoff(t *testing.T) {
	fb := &FixedBackoff{Delay: 50 * time.Millisecond}
	assert.Equal(t, 50*time.Millisecond, fb.NextDelay(0))
	assert.Equal(t, 50*time.Millisecond, fb.NextDelay(9))
}

package braintree

import (
	"errors"
	"sync"
	"time"
)

// CircuitState is the breaker's position: closed (traffic flows), open
// (calls rejected until the cool-off elapses), half-open (a limited number
// of probes decide which way to go).
type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// CircuitBreakerConfig tunes when the breaker trips and recovers.
type CircuitBreakerConfig struct {
	// Consecutive failures that trip the breaker.
	MaxFailures uint32
	// Cool-off before an open breaker lets a probe through.
	Timeout time.Duration
	// Probe budget while half-open.
	MaxRequestsHalfOpen uint32
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:         5,
		Timeout:             30 * time.Second,
		MaxRequestsHalfOpen: 1,
	}
}

// CircuitBreaker stops the wire client from hammering a gateway that is
// already failing. Only transport-level failures should be fed through
// Call; gateway declines are ordinary responses and must not trip it.
type CircuitBreaker struct {
	mu       sync.RWMutex
	config   CircuitBreakerConfig
	state    CircuitState
	failures uint32
	probes   uint32
	since    time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		since:  time.Now(),
	}
}

// Call runs fn when the breaker admits it and feeds the result back into
// the breaker's state.
func (cb *CircuitBreaker) Call(fn func() error) error {
	if err := cb.admit(); err != nil {
		return err
	}

	err := fn()
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if time.Since(cb.since) <= cb.config.Timeout {
			return ErrCircuitOpen
		}
		cb.transition(StateHalfOpen)
		cb.probes++
		return nil

	case StateHalfOpen:
		if cb.probes >= cb.config.MaxRequestsHalfOpen {
			return ErrTooManyRequests
		}
		cb.probes++
		return nil
	}

	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		if cb.state == StateHalfOpen {
			cb.transition(StateClosed)
			return
		}
		cb.failures = 0
		return
	}

	if cb.state == StateHalfOpen {
		cb.transition(StateOpen)
		return
	}

	cb.failures++
	if cb.state == StateClosed && cb.failures >= cb.config.MaxFailures {
		cb.transition(StateOpen)
	}
}

// transition resets the counters; callers hold the lock.
func (cb *CircuitBreaker) transition(next CircuitState) {
	if cb.state == next {
		return
	}
	cb.state = next
	cb.since = time.Now()
	cb.failures = 0
	cb.probes = 0
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Failures() uint32 {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

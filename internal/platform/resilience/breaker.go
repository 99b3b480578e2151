package resilience

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// Breaker guards a dependency with a gobreaker state machine. Context
// cancellation by the caller never counts as a dependency failure.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(name string, cfg CircuitBreakerConfig, logger *logging.Logger) *Breaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	if logger == nil {
		logger = logging.Default()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Breaker{
		name: name,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *Breaker) Name() string {
	return b.name
}

func (b *Breaker) State() CircuitState {
	switch b.cb.State() {
	case gobreaker.StateOpen:
		return CircuitStateOpen
	case gobreaker.StateHalfOpen:
		return CircuitStateHalfOpen
	default:
		return CircuitStateClosed
	}
}

// Execute runs fn through b. A nil breaker runs fn directly.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}

	var zero T
	v, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%w: %s", ErrCircuitOpen, b.name)
	}
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, nil
	}
	return out, nil
}

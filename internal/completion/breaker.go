package completion

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider fails fast once the wrapped provider keeps failing.
// It never retries; an open breaker surfaces gobreaker.ErrOpenState.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

// MinHalfOpenRequests is the number of requests a half-open breaker admits
// at least. It equals the number of concurrent requests of one word lookup,
// so a recovered endpoint serves the whole first lookup after a cooldown.
const MinHalfOpenRequests = 5

// NewBreakerProvider wraps next with a circuit breaker that opens after
// failures consecutive errors and half-opens after cooldown. While half-open
// it admits halfOpen requests, never fewer than MinHalfOpenRequests.
func NewBreakerProvider(next Provider, failures, halfOpen uint32, cooldown time.Duration) *BreakerProvider {
	if failures == 0 {
		failures = 1
	}
	if halfOpen < MinHalfOpenRequests {
		halfOpen = MinHalfOpenRequests
	}

	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: halfOpen,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("completion breaker state changed",
				slog.String("provider", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &BreakerProvider{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Complete forwards the request through the breaker
func (b *BreakerProvider) Complete(ctx context.Context, req Request) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped provider name
func (b *BreakerProvider) Name() string {
	return b.next.Name()
}

// State reports the breaker state
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}

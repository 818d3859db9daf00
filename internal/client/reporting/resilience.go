package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

type breaker interface {
	Execute(func() (struct{}, error)) (struct{}, error)
}

// newBreaker configures the circuit breaker guarding upstream calls.
// Context cancellation is the caller's doing and must not trip the
// breaker; everything else counts as an upstream failure.
func newBreaker() breaker {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "reporting",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})
}

// IsCircuitOpen reports whether err came from an open breaker rather
// than the upstream itself.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

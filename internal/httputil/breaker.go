// Copyright Venturely Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerSettings tunes a per-source circuit breaker.
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerSettings returns the settings used for source clients: the
// breaker trips after 60% failures over at least 4 requests and probes again
// after 30 seconds.
func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:             name,
		MaxRequests:      2,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      4,
	}
}

// Breaker wraps an HTTP caller in a circuit breaker so a persistently
// failing source stops consuming its per-call deadline on every aggregation.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker builds a Breaker from settings. State changes are logged at
// warn level.
func NewBreaker(s BreakerSettings, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Breaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        s.Name,
			MaxRequests: s.MaxRequests,
			Interval:    s.Interval,
			Timeout:     s.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < s.MinRequests {
					return false
				}
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)
				return ratio >= s.FailureThreshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("source breaker state change",
					zap.String("source", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to))
			},
		}),
	}
}

// errRetryableStatus marks a response that still carried a retryable status
// after the retry budget ran out, so the breaker counts it as a failure.
var errRetryableStatus = errors.New("retryable status after exhausted retries")

// Do executes the request through DoWithRetry under the breaker. When the
// breaker is open it fails immediately with gobreaker.ErrOpenState, which
// the aggregator absorbs like any other source failure. A final response
// that is still rate-limited or 5xx after all retries counts against the
// breaker but is returned to the caller as-is, preserving the DoWithRetry
// contract.
func (b *Breaker) Do(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		resp, err := DoWithRetry(ctx, client, req, maxRetries)
		if err != nil {
			return nil, err
		}
		if retryable(resp.StatusCode) {
			return resp, errRetryableStatus
		}
		return resp, nil
	})
	if errors.Is(err, errRetryableStatus) {
		return result.(*http.Response), nil
	}
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}

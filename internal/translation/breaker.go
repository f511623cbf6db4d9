package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

const (
	breakerMaxFailures = 5
	breakerOpenTimeout = 30 * time.Second
)

// BreakerService wraps a Service in a circuit breaker. After
// breakerMaxFailures consecutive failures calls fail fast until the open
// timeout elapses. Nothing is retried.
type BreakerService struct {
	next Service
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerService wraps next in a circuit breaker
func NewBreakerService(next Service, logger zerolog.Logger) *BreakerService {
	log := logger.With().Str("component", "breaker").Logger()
	settings := gobreaker.Settings{
		Name:    next.Name(),
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("service", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		// A cancelled request or an empty answer says nothing about the
		// upstream's health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyResult)
		},
	}
	return &BreakerService{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Name returns the wrapped service name
func (s *BreakerService) Name() string {
	return s.next.Name()
}

// Translate calls the wrapped service unless the breaker is open
func (s *BreakerService) Translate(ctx context.Context, text, from, to string) (string, error) {
	out, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Translate(ctx, text, from, to)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			return "", fmt.Errorf("%s unavailable, try again later: %w", s.next.Name(), err)
		}
		return "", err
	}
	return out.(string), nil
}

package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy bounds a retry loop. Delay doubles after every failed attempt.
type Policy struct {
	Attempts int
	Delay    time.Duration
	// Retryable decides whether err is worth another attempt. Nil retries everything.
	Retryable func(err error) bool
	// OnRetry is called before waiting for the next attempt.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Do runs fn until it succeeds, returns a non-retryable error, attempts are
// exhausted, or ctx is done.
func Do(ctx context.Context, p Policy, fn func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt < attempts-1 {
			if p.OnRetry != nil {
				p.OnRetry(attempt+1, delay, err)
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}
	if attempts == 1 {
		return err
	}
	return fmt.Errorf("max retry attempts reached: %w", err)
}

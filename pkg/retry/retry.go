// Package retry wraps an operation in bounded retries with exponential
// backoff. The delay before attempt n+1 is base*2^n; a run that exhausts its
// attempts reports an ExhaustedError wrapping the last failure. The wrapper
// only reacts to returned errors, it knows nothing about HTTP status codes
// or any other result semantics.
package retry

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultMaxAttempts is the attempt ceiling when none is configured.
	DefaultMaxAttempts = 5

	// DefaultBaseDelay is the first backoff interval when none is
	// configured.
	DefaultBaseDelay = time.Second
)

// ExhaustedError reports that every attempt failed. It wraps the error of
// the final attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry: %d attempts exhausted: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

type config struct {
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures a Do call.
type Option func(*config)

// WithMaxAttempts caps the number of attempts. Values below one are
// ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the first backoff interval.
func WithBaseDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// WithSleep replaces the sleep function. Tests use this to observe backoff
// timing without waiting.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *config) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn until it succeeds or the attempt ceiling is hit, sleeping
// base*2^attempt between failures. Context cancellation stops the run
// between attempts and during backoff.
func Do[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	cfg := config{
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if attempt == cfg.maxAttempts-1 {
			break
		}
		delay := cfg.baseDelay * (1 << attempt)
		if err := cfg.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, &ExhaustedError{Attempts: cfg.maxAttempts, Err: lastErr}
}

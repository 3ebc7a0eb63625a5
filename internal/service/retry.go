package service

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy bounds how often an operation is re-run after a retryable failure.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	// Retryable decides whether an error is worth another attempt. nil retries every error.
	Retryable func(error) bool
}

// RetryExhaustedError is returned when every attempt failed with a retryable error.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the attempt
// bound is reached. It returns the number of attempts made.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error) (int, error) {
	limit := p.MaxAttempts
	if limit < 1 {
		limit = 1
	}

	var lastErr error
	for attempt := 1; attempt <= limit; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return attempt, nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return attempt, lastErr
		}
		if attempt == limit {
			break
		}
		if err := p.wait(ctx); err != nil {
			return attempt, err
		}
	}
	return limit, &RetryExhaustedError{Attempts: limit, Err: lastErr}
}

func (p RetryPolicy) wait(ctx context.Context) error {
	if p.Backoff <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

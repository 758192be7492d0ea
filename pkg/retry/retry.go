package retry

import (
	"context"
	"errors"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// Policy bounds the retry loop around an upstream call.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy mirrors the extraction defaults: 3 attempts, 1s initial
// backoff doubling up to 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     10 * time.Second,
	}
}

// Do runs fn under the policy with exponential backoff. Errors wrapped in
// Permanent abort immediately; everything else is treated as transient
// until the attempt budget is spent. Context cancellation stops the loop.
func Do(ctx context.Context, p Policy, fn func() error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		bo.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		bo.MaxInterval = p.MaxInterval
	}
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	wrapped := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), uint64(p.MaxAttempts-1))
	return backoff.Retry(fn, wrapped)
}

// Permanent marks err as non-retryable for Do.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// IsRetryableError reports whether an upstream error should trigger a retry.
// Retryable errors include network failures, timeouts, rate limits, and 5xx
// responses from the model API.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Timeouts
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "resource_exhausted") ||
		strings.Contains(errStr, "429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") ||
		strings.Contains(errStr, "unavailable") {
		return true
	}

	return false
}

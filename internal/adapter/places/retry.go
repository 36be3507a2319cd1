package places

import (
	"context"
	"time"
)

// retryConfig configures exponential backoff for resolver calls.
type retryConfig struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	multiplier float64
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxRetries: 3,
		baseDelay:  100 * time.Millisecond,
		maxDelay:   2 * time.Second,
		multiplier: 2.0,
	}
}

// retryWithBackoff runs fn with exponential backoff. Retry stops immediately
// on context cancellation.
func retryWithBackoff[T any](ctx context.Context, cfg retryConfig, fn func() (T, error)) (T, error) {
	var lastErr error
	var zero T
	backoff := cfg.baseDelay

	for attempt := 0; attempt < cfg.maxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if attempt < cfg.maxRetries-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
				backoff = time.Duration(float64(backoff) * cfg.multiplier)
				if backoff > cfg.maxDelay {
					backoff = cfg.maxDelay
				}
			}
		}
	}

	return zero, lastErr
}

package advisory

import (
	"context"
	"errors"
	"time"

	"github.com/SriNikhita22/biosync-carechain/internal/genai"
)

// RetryPolicy retries a generation call on rate-limit rejections only,
// doubling the delay between attempts. Any other failure surfaces
// immediately; the fallback path handles it better than waiting would.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration

	// sleep is swappable in tests.
	sleep func(context.Context, time.Duration) error
}

func NewRetryPolicy(maxRetries int, initialDelay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxRetries:   maxRetries,
		InitialDelay: initialDelay,
		sleep:        sleepCtx,
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, or
// the retry budget is spent.
func (p RetryPolicy) Do(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	delay := p.InitialDelay
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		text, err := fn(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !errors.Is(err, genai.ErrRateLimited) || attempt >= p.MaxRetries {
			return "", lastErr
		}
		if err := sleep(ctx, delay); err != nil {
			return "", lastErr
		}
		delay *= 2
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package ai

import (
	"context"
	"log"
	"time"
)

// FallbackClient wraps a primary provider with bounded retry and a single-shot
// secondary fallback. Every text-bearing extraction call goes through here;
// it is the only resilience layer in the system.
type FallbackClient struct {
	primary    Provider
	secondary  Provider
	maxRetries int

	// wait is swappable in tests; the default sleeps without blocking other
	// requests and aborts when the context is cancelled.
	wait func(ctx context.Context, d time.Duration) error
}

// NewFallbackClient creates a fallback client. maxRetries counts retries after
// the first primary attempt, so maxRetries=2 means up to 3 primary attempts.
func NewFallbackClient(primary, secondary Provider, maxRetries int) *FallbackClient {
	if maxRetries < 0 {
		maxRetries = 2
	}
	return &FallbackClient{
		primary:    primary,
		secondary:  secondary,
		maxRetries: maxRetries,
		wait:       waitCtx,
	}
}

func waitCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Generate tries the primary provider up to maxRetries+1 times with
// exponential backoff (1s, 2s, ... before each retry), then makes exactly one
// secondary attempt. On total failure it returns the FIRST primary error,
// preserving the earliest diagnostic signal.
func (f *FallbackClient) Generate(ctx context.Context, parts []Part, temperature float64) (string, error) {
	var primaryErrs []error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			log.Printf("[AI] %s attempt %d failed, retrying in %s", f.primary.Name(), attempt, backoff)
			if err := f.wait(ctx, backoff); err != nil {
				if len(primaryErrs) > 0 {
					return "", primaryErrs[0]
				}
				return "", err
			}
		}

		out, err := f.primary.Generate(ctx, parts, temperature)
		if err == nil {
			return out, nil
		}
		primaryErrs = append(primaryErrs, err)
	}

	log.Printf("[AI] %s exhausted after %d attempts, falling back to %s: %v",
		f.primary.Name(), f.maxRetries+1, f.secondary.Name(), primaryErrs[0])

	out, err := f.secondary.Generate(ctx, parts, temperature)
	if err == nil {
		return out, nil
	}

	if len(primaryErrs) > 0 {
		return "", primaryErrs[0]
	}
	return "", err
}

package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryer decorates a Provider with bounded retries. Backoff doubles
// per attempt (capped at MaxWait, with jitter); a provider-sent
// Retry-After overrides the computed wait.
type retryer struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryer{next: p, cfg: cfg}
}

func (r *retryer) Generate(ctx context.Context, req Request) (*Response, error) {
	wait := r.cfg.InitialWait
	invalidSeen := false

	var lastErr error
	for attempt := 1; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}

		if attempt >= r.cfg.MaxAttempts {
			return nil, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(jittered(pauseFor(err, wait))):
		}

		wait = time.Duration(float64(wait) * r.cfg.Multiplier)
		if wait > r.cfg.MaxWait {
			wait = r.cfg.MaxWait
		}
	}
}

func (r *retryer) ModelID() string {
	return r.next.ModelID()
}

// pauseFor prefers the provider's Retry-After over the backoff wait.
func pauseFor(err error, wait time.Duration) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	return wait
}

// jittered spreads a wait by up to ±20% so concurrent retries desync.
func jittered(wait time.Duration) time.Duration {
	spread := wait / 5
	if spread <= 0 {
		return wait
	}
	return wait - spread + rand.N(2*spread)
}

// Package resilience provides the two call-wrapping primitives used around
// every oracle call: bounded retry with exponential backoff, and
// deadline-bounded execution. Both operate on plain func(ctx) calls so the
// same wrapper serves network round trips and local computations alike.
package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

// RetryConfig controls Do. Delay before attempt n+1 is Base * 2^n,
// n starting at 0. No jitter: attempts are few and callers are not herds.
type RetryConfig struct {
	MaxRetries int           // retry attempts after the first call
	Base       time.Duration // backoff base (factor)
}

// DefaultRetryConfig mirrors the engine defaults: three retries, 1s base.
var DefaultRetryConfig = RetryConfig{MaxRetries: 3, Base: time.Second}

// Retriable lets an operation veto further retries for failures it knows are
// permanent (e.g. a 401 from the upstream). Errors that do not implement it
// are retried unconditionally.
type Retriable interface {
	Retriable() bool
}

// Do invokes op up to cfg.MaxRetries+1 times, sleeping Base*2^attempt between
// attempts and logging each failure at warning level. After the budget is
// spent it returns a RetryExhaustedError wrapping the last failure; a
// non-retriable failure is returned as-is without consuming the budget. The
// sleep is cut short when ctx is cancelled.
func Do[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		var r Retriable
		if errors.As(err, &r) && !r.Retriable() {
			// Nothing was exhausted here; the failure surfaces as itself.
			slog.Warn("Non-retriable failure, giving up early", "attempt", attempt+1, "error", err)
			return zero, err
		}
		if attempt == cfg.MaxRetries {
			break
		}

		wait := cfg.Base * (1 << attempt)
		slog.Warn("Attempt failed, backing off",
			"attempt", attempt+1,
			"wait", wait,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, &errs.RetryExhaustedError{Attempts: cfg.MaxRetries, Err: lastErr}
}

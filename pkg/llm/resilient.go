package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/resilience"
)

// ResilientClient wraps a Client with a per-call deadline and exponential
// backoff retry. Timeouts and transient provider errors are retried; other
// failures abort immediately.
type ResilientClient struct {
	inner   Client
	timeout time.Duration
	retry   resilience.RetryConfig
}

// NewResilientClient wraps inner. A non-positive timeout disables the
// per-call deadline.
func NewResilientClient(inner Client, timeout time.Duration, retry resilience.RetryConfig) *ResilientClient {
	return &ResilientClient{inner: inner, timeout: timeout, retry: retry}
}

// permanentError marks an error as not worth retrying.
type permanentError struct{ err error }

func (p *permanentError) Error() string   { return p.err.Error() }
func (p *permanentError) Unwrap() error   { return p.err }
func (p *permanentError) Retriable() bool { return false }

// Complete runs the wrapped client under deadline and retry control.
// Empty completions are treated as transient failures.
func (r *ResilientClient) Complete(ctx context.Context, messages []Message) (string, error) {
	return resilience.Do(ctx, r.retry, func(ctx context.Context) (string, error) {
		out, err := resilience.WithTimeout(ctx, r.timeout, func(ctx context.Context) (string, error) {
			text, err := r.inner.Complete(ctx, messages)
			if err != nil {
				return "", err
			}
			if strings.TrimSpace(text) == "" {
				return "", &errs.APIError{Message: "model returned empty content"}
			}
			return text, nil
		})
		if err != nil && !r.retriable(err) {
			return "", &permanentError{err: err}
		}
		return out, err
	})
}

// retriable decides whether a failed attempt should be repeated: timeouts,
// empty completions, and whatever the provider deems transient.
func (r *ResilientClient) retriable(err error) bool {
	var te *errs.TimeoutError
	if errors.As(err, &te) {
		return true
	}
	if strings.Contains(err.Error(), "empty content") {
		return true
	}
	return r.inner.IsTransientError(err)
}

// IsTransientError delegates to the wrapped client.
func (r *ResilientClient) IsTransientError(err error) bool {
	return r.inner.IsTransientError(err)
}

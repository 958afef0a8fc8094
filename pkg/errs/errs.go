// Package errs defines the error taxonomy shared by the router client and
// the tool server. Callers classify failures with errors.As / errors.Is;
// user-facing surfaces format them with Describe.
package errs

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError reports malformed input: an empty query, a structured call
// that does not match the wire contract, or bad tool arguments. It is never
// retried and surfaces immediately.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// TimeoutError reports a single call exceeding its deadline. It names the
// bound that was exceeded and counts toward the retry budget.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation timed out after %s", e.Limit)
}

// APIError reports a failed or empty upstream model call.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api call failed: %s: %v", e.Message, e.Err)
	}
	return "api call failed: " + e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// ToolExecutionError reports a capability invocation that failed: unknown
// tool name, a remote-side error, or an empty result. The orchestration loop
// absorbs it into the conversation instead of aborting the query.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %q execution failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// RetryExhaustedError wraps the last underlying failure after the retry
// budget is spent. Always fatal to the call site that invoked the retry.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("max retries (%d) exceeded: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Err }

// ClientError is the fatal, caller-visible failure of a whole query:
// connection establishment, initial validation, or a malformed structured
// call. The interactive surfaces print it and keep their read loop running.
type ClientError struct {
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error { return e.Err }

// Kind returns the taxonomy name for err, falling back to "Error" for
// unclassified values.
func Kind(err error) string {
	var (
		ve *ValidationError
		te *TimeoutError
		ae *APIError
		xe *ToolExecutionError
		re *RetryExhaustedError
		ce *ClientError
	)
	// Wrapper kinds first: a ClientError may wrap a RetryExhaustedError,
	// which in turn wraps the underlying API or timeout failure.
	switch {
	case errors.As(err, &ce):
		return "ClientError"
	case errors.As(err, &re):
		return "RetryExhaustedError"
	case errors.As(err, &xe):
		return "ToolExecutionError"
	case errors.As(err, &ve):
		return "ValidationError"
	case errors.As(err, &te):
		return "TimeoutError"
	case errors.As(err, &ae):
		return "APIError"
	default:
		return "Error"
	}
}

// Describe formats err as "[context] Kind: message" for logs and
// user-facing output. Context may be empty.
func Describe(err error, context string) string {
	if err == nil {
		return ""
	}
	if context != "" {
		return fmt.Sprintf("[%s] %s: %v", context, Kind(err), err)
	}
	return fmt.Sprintf("%s: %v", Kind(err), err)
}

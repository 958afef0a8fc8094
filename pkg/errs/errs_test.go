package errs

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &ValidationError{Reason: "empty"}, "ValidationError"},
		{"timeout", &TimeoutError{Limit: time.Second}, "TimeoutError"},
		{"api", &APIError{Message: "boom"}, "APIError"},
		{"tool", &ToolExecutionError{Tool: "add", Err: errors.New("x")}, "ToolExecutionError"},
		{"retry", &RetryExhaustedError{Attempts: 3, Err: errors.New("x")}, "RetryExhaustedError"},
		{"client", &ClientError{Message: "fatal"}, "ClientError"},
		{"plain", errors.New("whatever"), "Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Kind(tc.err))
		})
	}
}

func TestKindPrefersOuterWrapper(t *testing.T) {
	inner := &APIError{Message: "upstream 503"}
	wrapped := &RetryExhaustedError{Attempts: 3, Err: inner}
	outer := &ClientError{Message: "query failed", Err: wrapped}

	assert.Equal(t, "ClientError", Kind(outer))
	assert.Equal(t, "RetryExhaustedError", Kind(wrapped))
	assert.Equal(t, "APIError", Kind(fmt.Errorf("ctx: %w", inner)))
}

func TestDescribe(t *testing.T) {
	err := &ValidationError{Reason: "query cannot be empty"}
	assert.Equal(t, "[query processing] ValidationError: validation failed: query cannot be empty", Describe(err, "query processing"))
	assert.Equal(t, "ValidationError: validation failed: query cannot be empty", Describe(err, ""))
	assert.Equal(t, "", Describe(nil, "anything"))
}

func TestUnwrapChains(t *testing.T) {
	root := errors.New("connection refused")
	err := &ClientError{Message: "fatal", Err: &RetryExhaustedError{Attempts: 2, Err: &APIError{Message: "call", Err: root}}}
	assert.ErrorIs(t, err, root)
}

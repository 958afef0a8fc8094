package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

type permanent struct{ msg string }

func (p *permanent) Error() string   { return p.msg }
func (p *permanent) Retriable() bool { return false }

func TestDoSucceedsAfterRetries(t *testing.T) {
	calls := 0
	out, err := Do(context.Background(), RetryConfig{MaxRetries: 3, Base: time.Millisecond}, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsBudget(t *testing.T) {
	calls := 0
	last := errors.New("still failing")
	_, err := Do(context.Background(), RetryConfig{MaxRetries: 2, Base: time.Millisecond}, func(ctx context.Context) (int, error) {
		calls++
		return 0, last
	})

	assert.Equal(t, 3, calls) // first call plus two retries

	var re *errs.RetryExhaustedError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Attempts)
	assert.ErrorIs(t, err, last)
}

func TestDoBacksOffExponentially(t *testing.T) {
	const base = 10 * time.Millisecond

	start := time.Now()
	_, err := Do(context.Background(), RetryConfig{MaxRetries: 2, Base: base}, func(ctx context.Context) (int, error) {
		return 0, errors.New("transient")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	// Waits are base*2^0 + base*2^1 between the three attempts.
	assert.GreaterOrEqual(t, elapsed, 3*base)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	calls := 0
	cause := &permanent{msg: "unauthorized"}
	_, err := Do(context.Background(), RetryConfig{MaxRetries: 5, Base: time.Millisecond}, func(ctx context.Context) (int, error) {
		calls++
		return 0, cause
	})

	assert.Equal(t, 1, calls)

	// The failure surfaces as itself, not as an exhausted retry budget.
	var re *errs.RetryExhaustedError
	assert.False(t, errors.As(err, &re))
	var p *permanent
	require.ErrorAs(t, err, &p)
	assert.Same(t, cause, p)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, RetryConfig{MaxRetries: 3, Base: time.Hour}, func(ctx context.Context) (int, error) {
		return 0, errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	t.Run("completes within bound", func(t *testing.T) {
		out, err := WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
			return "fast", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fast", out)
	})

	t.Run("deadline exceeded yields TimeoutError", func(t *testing.T) {
		_, err := WithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Second):
				return "too slow", nil
			}
		})

		var te *errs.TimeoutError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, 10*time.Millisecond, te.Limit)
	})

	t.Run("non-positive timeout runs unbounded", func(t *testing.T) {
		out, err := WithTimeout(context.Background(), 0, func(ctx context.Context) (string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.False(t, hasDeadline)
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	})
}

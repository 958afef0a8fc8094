package resilience

import (
	"context"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

// WithTimeout runs op under a child context bounded by timeout. When the
// bound is exceeded the child context is cancelled and the call fails with a
// TimeoutError naming it. A non-positive timeout runs op unbounded.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, op func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return op(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := op(callCtx)
	if err != nil && callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		var zero T
		return zero, &errs.TimeoutError{Limit: timeout}
	}
	return out, err
}

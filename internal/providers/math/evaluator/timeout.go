package evaluator

import (
	"context"
	"fmt"
	"time"
)

// WithTimeout bounds each evaluation of eval by d. A d <= 0 returns eval
// unchanged. An evaluation that overruns keeps running in the background
// but its result is discarded.
func WithTimeout(eval Evaluator, d time.Duration) Evaluator {
	if d <= 0 {
		return eval
	}

	type outcome struct {
		value float64
		err   error
	}

	return Func(func(ctx context.Context, expression string) (float64, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		done := make(chan outcome, 1)
		go func() {
			v, err := eval.Evaluate(ctx, expression)
			done <- outcome{value: v, err: err}
		}()

		select {
		case o := <-done:
			return o.value, o.err
		case <-ctx.Done():
			return 0, fmt.Errorf("evaluate %q: %w", expression, ctx.Err())
		}
	})
}

package evaluator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeoutPassesThrough(t *testing.T) {
	ev := WithTimeout(New(), time.Second)

	v, err := ev.Evaluate(context.Background(), "2^3")
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestWithTimeoutExpires(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	slow := Func(func(ctx context.Context, expression string) (float64, error) {
		<-release
		return 1, nil
	})

	_, err := WithTimeout(slow, 10*time.Millisecond).Evaluate(context.Background(), "1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeoutDisabled(t *testing.T) {
	ev := New()
	assert.Same(t, ev, WithTimeout(ev, 0))
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnimesh/wirecheck/internal/config"
)

func testPolicy() config.RetryConfig {
	return config.RetryConfig{Attempts: 3, BaseDelay: time.Millisecond}
}

func TestRetryRead(t *testing.T) {
	ctx := context.Background()

	t.Run("returns result on first success", func(t *testing.T) {
		calls := 0
		got, err := retryRead(ctx, testPolicy(), func(ctx context.Context) (int, error) {
			calls++
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers from transient failures", func(t *testing.T) {
		calls := 0
		got, err := retryRead(ctx, testPolicy(), func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection refused")
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		calls := 0
		_, err := retryRead(ctx, testPolicy(), func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("connection refused")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry reverts", func(t *testing.T) {
		calls := 0
		_, err := retryRead(ctx, testPolicy(), func(ctx context.Context) ([]byte, error) {
			calls++
			return nil, errors.New("execution reverted")
		})

		require.Error(t, err)
		assert.True(t, isRevert(err))
		assert.Equal(t, 1, calls)
	})
}

func TestIsRevert(t *testing.T) {
	assert.False(t, isRevert(nil))
	assert.False(t, isRevert(errors.New("connection refused")))
	assert.True(t, isRevert(errors.New("execution reverted")))
	assert.True(t, isRevert(errors.New("execution reverted: custom reason")))
}

package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-dev/habitflow/internal/service"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "wrapped retryable", err: &RetryableError{Err: errors.New("boom"), Retryable: true}, want: true},
		{name: "wrapped non-retryable", err: &RetryableError{Err: errors.New("boom"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	boom := errors.New("boom")
	attempts := 0

	err := WithRetry(context.Background(), func() error {
		attempts++
		return boom
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts, "a non-retryable error stops immediately")
}

func TestWithRetryRecovers(t *testing.T) {
	attempts := 0

	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &RetryableError{Err: errors.New("transient"), Retryable: true}
		}
		return nil
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	err := WithRetry(context.Background(), func() error {
		return &RetryableError{Err: errors.New("transient"), Retryable: true}
	}, service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond})

	require.ErrorIs(t, err, ErrMaxRetries)
}

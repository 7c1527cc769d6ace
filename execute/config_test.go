package execute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildConfig_Defaults(t *testing.T) {
	config, err := BuildConfig()

	assert.NoError(t, err)
	assert.Equal(t, 5, config.MaxRetries())
	assert.Equal(t, 100*time.Millisecond, config.BaseDelay())
	assert.Equal(t, 5*time.Second, config.MaxDelay())
	assert.InDelta(t, 0.3, config.JitterFactor(), 0.0001)
}

func Test_BuildConfig_WithAllOptions(t *testing.T) {
	config, err := BuildConfig(
		WithMaxRetries(3),
		WithBaseDelay(10*time.Millisecond),
		WithMaxDelay(time.Second),
		WithJitterFactor(0.5),
	)

	assert.NoError(t, err)
	assert.Equal(t, 3, config.MaxRetries())
	assert.Equal(t, 10*time.Millisecond, config.BaseDelay())
	assert.Equal(t, time.Second, config.MaxDelay())
	assert.InDelta(t, 0.5, config.JitterFactor(), 0.0001)
}

func Test_BuildConfig_InvalidOptions(t *testing.T) {
	tests := []struct {
		name        string
		options     []ConfigOption
		expectedErr error
	}{
		{
			name:        "zero max retries",
			options:     []ConfigOption{WithMaxRetries(0)},
			expectedErr: ErrInvalidMaxRetries,
		},
		{
			name:        "negative max retries",
			options:     []ConfigOption{WithMaxRetries(-1)},
			expectedErr: ErrInvalidMaxRetries,
		},
		{
			name:        "max retries beyond overflow bound",
			options:     []ConfigOption{WithMaxRetries(65)},
			expectedErr: ErrInvalidMaxRetries,
		},
		{
			name:        "zero base delay",
			options:     []ConfigOption{WithBaseDelay(0)},
			expectedErr: ErrInvalidBaseDelay,
		},
		{
			name:        "negative base delay",
			options:     []ConfigOption{WithBaseDelay(-time.Second)},
			expectedErr: ErrInvalidBaseDelay,
		},
		{
			name:        "base delay beyond upper bound",
			options:     []ConfigOption{WithBaseDelay(2 * time.Hour)},
			expectedErr: ErrInvalidBaseDelay,
		},
		{
			name:        "zero max delay",
			options:     []ConfigOption{WithMaxDelay(0)},
			expectedErr: ErrInvalidMaxDelay,
		},
		{
			name:        "max delay beyond upper bound",
			options:     []ConfigOption{WithMaxDelay(2 * time.Hour)},
			expectedErr: ErrInvalidMaxDelay,
		},
		{
			name:        "negative jitter factor",
			options:     []ConfigOption{WithJitterFactor(-0.1)},
			expectedErr: ErrInvalidJitterFactor,
		},
		{
			name:        "jitter factor above one",
			options:     []ConfigOption{WithJitterFactor(1.5)},
			expectedErr: ErrInvalidJitterFactor,
		},
		{
			name: "base delay exceeds max delay",
			options: []ConfigOption{
				WithBaseDelay(2 * time.Second),
				WithMaxDelay(time.Second),
			},
			expectedErr: ErrBaseDelayExceedsMaxDelay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildConfig(tt.options...)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BackoffDelay_DoublesUntilCap(t *testing.T) {
	config, err := BuildConfig(
		WithBaseDelay(100*time.Millisecond),
		WithMaxDelay(5000*time.Millisecond),
	)
	assert.NoError(t, err)

	expected := []time.Duration{
		100 * time.Millisecond,  // attempt 1
		200 * time.Millisecond,  // attempt 2
		400 * time.Millisecond,  // attempt 3
		800 * time.Millisecond,  // attempt 4
		1600 * time.Millisecond, // attempt 5
		3200 * time.Millisecond, // attempt 6
		5000 * time.Millisecond, // attempt 7, capped
		5000 * time.Millisecond, // attempt 8, capped
	}

	for attempt, want := range expected {
		assert.Equal(t, want, config.BackoffDelay(attempt+1), "attempt %d", attempt+1)
	}
}

func Test_BackoffDelay_BoundedAndNonDecreasing(t *testing.T) {
	config, err := BuildConfig(
		WithBaseDelay(100*time.Millisecond),
		WithMaxDelay(5000*time.Millisecond),
	)
	assert.NoError(t, err)

	previous := time.Duration(0)

	for attempt := 1; attempt <= 64; attempt++ {
		delay := config.BackoffDelay(attempt)

		assert.LessOrEqual(t, delay, 5000*time.Millisecond, "attempt %d exceeds the cap", attempt)
		assert.GreaterOrEqual(t, delay, previous, "attempt %d decreased", attempt)

		previous = delay
	}
}

func Test_BackoffDelay_NonPositiveAttempt(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, time.Duration(0), config.BackoffDelay(0))
	assert.Equal(t, time.Duration(0), config.BackoffDelay(-1))
}

func Test_JitteredBackoffDelay_NeverExceedsMaxDelay(t *testing.T) {
	config, err := BuildConfig(
		WithBaseDelay(100*time.Millisecond),
		WithMaxDelay(300*time.Millisecond),
		WithJitterFactor(1.0),
	)
	assert.NoError(t, err)

	for attempt := 1; attempt <= 10; attempt++ {
		for range 50 {
			delay := config.jitteredBackoffDelay(attempt)

			assert.GreaterOrEqual(t, delay, config.BackoffDelay(attempt))
			assert.LessOrEqual(t, delay, 300*time.Millisecond)
		}
	}
}

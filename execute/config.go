package execute

import (
	"errors"
	"math/rand"
	"time"
)

const (
	defaultMaxRetries   = 5
	defaultBaseDelay    = 100 * time.Millisecond
	defaultMaxDelay     = 5 * time.Second
	defaultJitterFactor = 0.3

	// maxRetriesLimit bounds the retry budget so the exponential backoff
	// shift can never overflow a time.Duration.
	maxRetriesLimit = 64

	// delayLimit is the sane upper bound for both base and max delay.
	delayLimit = time.Hour
)

var (
	// ErrInvalidMaxRetries is returned when max retries are not positive or
	// exceed the supported limit.
	ErrInvalidMaxRetries = errors.New("max retries must be between 1 and 64")

	// ErrInvalidBaseDelay is returned when the base delay is not positive or
	// exceeds the supported limit.
	ErrInvalidBaseDelay = errors.New("base delay must be positive and at most one hour")

	// ErrInvalidMaxDelay is returned when the max delay is not positive or
	// exceeds the supported limit.
	ErrInvalidMaxDelay = errors.New("max delay must be positive and at most one hour")

	// ErrInvalidJitterFactor is returned when the jitter factor is not
	// between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")

	// ErrBaseDelayExceedsMaxDelay is returned when the base delay is larger
	// than the max delay.
	ErrBaseDelayExceedsMaxDelay = errors.New("base delay must not exceed max delay")
)

// Config holds the retry policy for command execution: how often a
// concurrency conflict is retried and how the backoff between attempts grows.
// It is immutable once built; construct it with BuildConfig.
type Config struct {
	maxRetries   int
	baseDelay    time.Duration
	maxDelay     time.Duration
	jitterFactor float64
}

// ConfigOption configures a Config using the functional options pattern.
type ConfigOption func(*Config) error

// BuildConfig creates a Config from the defaults and the given options.
// Every option validates its input, and the combination is validated
// atomically at build time, so execution never sees a partially valid config.
//
// Defaults: 5 retries, 100ms base delay, 5s max delay, 0.3 jitter factor.
func BuildConfig(options ...ConfigOption) (Config, error) {
	config := DefaultConfig()

	for _, option := range options {
		if err := option(&config); err != nil {
			return Config{}, err
		}
	}

	if config.baseDelay > config.maxDelay {
		return Config{}, ErrBaseDelayExceedsMaxDelay
	}

	return config, nil
}

// DefaultConfig returns the documented default retry policy.
func DefaultConfig() Config {
	return Config{
		maxRetries:   defaultMaxRetries,
		baseDelay:    defaultBaseDelay,
		maxDelay:     defaultMaxDelay,
		jitterFactor: defaultJitterFactor,
	}
}

// WithMaxRetries sets how many times a concurrency conflict is retried
// before ErrMaxRetriesExceeded is reported. The first attempt is not a retry:
// max retries N allows N+1 attempts in total.
func WithMaxRetries(retries int) ConfigOption {
	return func(config *Config) error {
		if retries <= 0 || retries > maxRetriesLimit {
			return ErrInvalidMaxRetries
		}

		config.maxRetries = retries

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Computed delays: baseDelay, baseDelay*2, baseDelay*4, etc., capped at the
// max delay.
func WithBaseDelay(delay time.Duration) ConfigOption {
	return func(config *Config) error {
		if delay <= 0 || delay > delayLimit {
			return ErrInvalidBaseDelay
		}

		config.baseDelay = delay

		return nil
	}
}

// WithMaxDelay sets the cap for the backoff delay between attempts.
func WithMaxDelay(delay time.Duration) ConfigOption {
	return func(config *Config) error {
		if delay <= 0 || delay > delayLimit {
			return ErrInvalidMaxDelay
		}

		config.maxDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter factor to prevent thundering herd
// problems. Jitter is added as a fraction of the computed backoff delay.
// Valid range: 0.0 (no jitter) to 1.0 (100% jitter).
func WithJitterFactor(factor float64) ConfigOption {
	return func(config *Config) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		config.jitterFactor = factor

		return nil
	}
}

// MaxRetries returns the configured retry budget.
func (c Config) MaxRetries() int {
	return c.maxRetries
}

// BaseDelay returns the configured base delay.
func (c Config) BaseDelay() time.Duration {
	return c.baseDelay
}

// MaxDelay returns the configured delay cap.
func (c Config) MaxDelay() time.Duration {
	return c.maxDelay
}

// JitterFactor returns the configured jitter factor.
func (c Config) JitterFactor() float64 {
	return c.jitterFactor
}

// BackoffDelay computes the backoff delay before the given retry attempt
// (1-indexed): min(baseDelay * 2^(attempt-1), maxDelay). The function is
// pure; jitter is applied separately at sleep time. The schedule is
// non-decreasing in the attempt number and never exceeds the max delay.
func (c Config) BackoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}

	shift := uint(attempt - 1)

	// Once the doubling passes the cap the shift itself can overflow,
	// so check against the cap before shifting.
	if shift >= 63 || c.baseDelay > c.maxDelay>>shift {
		return c.maxDelay
	}

	return c.baseDelay << shift
}

// jitteredBackoffDelay adds proportional jitter to the backoff delay, still
// capped at the max delay so the configured bound holds under contention.
func (c Config) jitteredBackoffDelay(attempt int) time.Duration {
	delay := c.BackoffDelay(attempt)

	jitter := time.Duration(rand.Float64() * float64(delay) * c.jitterFactor) //nolint:gosec // math/rand is sufficient for jitter

	if delay+jitter > c.maxDelay {
		return c.maxDelay
	}

	return delay + jitter
}

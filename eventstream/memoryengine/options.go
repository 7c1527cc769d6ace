package memoryengine

import (
	"errors"
	"time"

	"github.com/cmdstream/cmdstream-go/execute"
)

var (
	// ErrNilLogger is returned when a nil logger is provided.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilMetricsCollector is returned when a nil metrics collector is provided.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")

	// ErrNilClock is returned when a nil clock is provided.
	ErrNilClock = errors.New("clock must not be nil")
)

// Option defines a functional option for configuring the EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: per-operation logging with stream and event counts
// (development use)
// Info level: concurrency conflicts (production-safe).
func WithLogger(logger execute.Logger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilLogger
		}

		es.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EventStore,
// enabling automatic trace correlation on log records.
func WithContextualLogger(logger execute.ContextualLogger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilLogger
		}

		es.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore. The collector
// receives read/append counters and concurrency conflict counts.
func WithMetrics(collector execute.MetricsCollector) Option {
	return func(es *EventStore) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		es.metricsCollector = collector

		return nil
	}
}

// WithClock sets the time source used for bookkeeping. Intended for tests;
// defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(es *EventStore) error {
		if clock == nil {
			return ErrNilClock
		}

		es.clock = clock

		return nil
	}
}

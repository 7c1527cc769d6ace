package execute

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cmdstream/cmdstream-go/eventstream"
)

// Metric names emitted by the execution engine.
const (
	// ExecuteRetriesMetric counts retry attempts, labeled by command type,
	// attempt number and error type.
	ExecuteRetriesMetric = "commandexec_retries_total"

	// ExecuteRetryDelayMetric records the actual backoff delay before each
	// retry attempt.
	ExecuteRetryDelayMetric = "commandexec_retry_delay_seconds"

	// ExecuteMaxRetriesReachedMetric counts executions that exhausted the
	// retry budget.
	ExecuteMaxRetriesReachedMetric = "commandexec_max_retries_reached_total"
)

// Log and metric label keys.
const (
	LogAttrCommandType  = "command_type"
	LogAttrStreamID     = "stream_id"
	LogAttrAttempt      = "attempt"
	LogAttrDelay        = "delay"
	LogAttrErrorType    = "error_type"
	LabelAttemptNumber  = "attempt_number"
	LabelFinalErrorType = "final_error_type"
)

// Logger interface for operational logging from the execution engine and
// store engines.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting execution performance and
// operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware
// methods for better tracing integration. This interface is optional: the
// engine uses the context-aware methods when available, falling back to the
// base MetricsCollector interface otherwise.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// ContextualLogger interface for context-aware logging with automatic trace
// correlation. This follows the same dependency-free pattern as
// MetricsCollector, allowing integration with any logging backend that
// supports context-based correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// BuildRetryLabels creates the metric labels for one retry attempt.
func BuildRetryLabels(commandType string, attempt int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LabelAttemptNumber: strconv.Itoa(attempt),
		LogAttrErrorType:   errorType,
	}
}

// errorTypeOf extracts a string representation of the error type for metrics labeling.
func errorTypeOf(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, eventstream.ErrConcurrencyConflict):
		return "concurrency_conflict"
	case errors.Is(err, eventstream.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, context.Canceled):
		return "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "context_deadline_exceeded"
	default:
		return "other"
	}
}

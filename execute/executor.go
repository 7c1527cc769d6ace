package execute

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cmdstream/cmdstream-go/eventstream"
)

var (
	// ErrMaxRetriesExceeded is returned when the retry budget is exhausted
	// by consecutive concurrency conflicts. The final conflict is joined in.
	ErrMaxRetriesExceeded = errors.New("command execution exceeded max retries")

	// ErrNilStore is returned when Execute is called without a store.
	ErrNilStore = errors.New("event store must not be nil")

	// ErrNilCodec is returned when Execute is called without a codec.
	ErrNilCodec = errors.New("event codec must not be nil")

	// ErrNilClock is returned when a nil clock is provided to WithClock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilLogger is returned when a nil logger is provided.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilMetricsCollector is returned when a nil metrics collector is provided.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
)

// Result reports a successful command execution.
type Result[E Event] struct {
	// Events are the events produced by the command and appended to the
	// stream. Empty for idempotent commands that decided to change nothing.
	Events []E

	// Revision is the stream's revision after this execution. For an
	// idempotent no-op it is the revision observed when the state was loaded,
	// and zero when the stream did not exist.
	Revision eventstream.RevisionUint

	// Attempts is the number of load-decide-append cycles that ran,
	// including the final successful one.
	Attempts int
}

// executeSettings holds the per-call configuration of Execute.
type executeSettings struct {
	config           Config
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	clock            func() time.Time
	causationID      uuid.UUID
	correlationID    uuid.UUID
	hasMetadataIDs   bool
}

// Option configures a single Execute call using the functional options pattern.
type Option func(*executeSettings) error

// WithConfig sets the retry policy for this execution. Without this option
// the documented defaults apply.
func WithConfig(config Config) Option {
	return func(settings *executeSettings) error {
		settings.config = config
		return nil
	}
}

// WithLogger sets the logger for this execution.
//
// Debug level: per-attempt progress (development use)
// Info level: retries with their backoff delay (production-safe)
// Warn level: retry budget exhaustion.
func WithLogger(logger Logger) Option {
	return func(settings *executeSettings) error {
		if logger == nil {
			return ErrNilLogger
		}

		settings.logger = logger

		return nil
	}
}

// WithContextualLogger sets a context-aware logger for this execution,
// enabling automatic trace correlation when tracing is configured.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(settings *executeSettings) error {
		if logger == nil {
			return ErrNilLogger
		}

		settings.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for retry instrumentation.
func WithMetrics(collector MetricsCollector) Option {
	return func(settings *executeSettings) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		settings.metricsCollector = collector

		return nil
	}
}

// WithEventMetadata sets the causation and correlation IDs stamped on every
// appended event. Without this option both default to the per-event message ID.
func WithEventMetadata(causationID uuid.UUID, correlationID uuid.UUID) Option {
	return func(settings *executeSettings) error {
		settings.causationID = causationID
		settings.correlationID = correlationID
		settings.hasMetadataIDs = true

		return nil
	}
}

// WithClock sets the time source used to stamp appended events.
// Intended for tests; defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(settings *executeSettings) error {
		if clock == nil {
			return ErrNilClock
		}

		settings.clock = clock

		return nil
	}
}

// Execute runs one command against its event stream with optimistic
// concurrency control.
//
// Each attempt performs the full cycle: read the stream (ErrStreamNotFound
// means a new aggregate), decode and fold the history into the aggregate
// state, rebuild the command with that state, run its decision logic, and
// append the produced events under the expected-revision precondition.
//
// Only concurrency conflicts are retried, with exponential backoff bounded
// by the configured retry budget; every retry re-reads the stream and
// re-decides, so a decision is never replayed against stale state. Domain
// errors from Handle are returned unchanged and never retried. Store
// unavailability and serialization failures are terminal.
//
// Cancelling ctx aborts reads, appends, and backoff waits; events already
// appended are never rolled back.
func Execute[E Event, S State[E, S]](
	ctx context.Context,
	store eventstream.Store,
	codec Codec[E],
	command Command[E, S],
	options ...Option,
) (Result[E], error) {
	if store == nil {
		return Result[E]{}, ErrNilStore
	}

	if codec == nil {
		return Result[E]{}, ErrNilCodec
	}

	settings := executeSettings{
		config: DefaultConfig(),
		clock:  time.Now,
	}

	for _, option := range options {
		if err := option(&settings); err != nil {
			return Result[E]{}, err
		}
	}

	streamID := command.EventStreamID()

	// Command handlers perform read-check-write, so reads must see the
	// stream's own latest appends.
	ctx = eventstream.WithStrongConsistency(ctx)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result[E]{Attempts: attempt - 1}, err
		}

		state, expected, loadedRevision, err := loadState(ctx, store, codec, command)
		if err != nil {
			return Result[E]{Attempts: attempt}, err
		}

		command = command.WithState(state)

		newEvents, err := command.Handle()
		if err != nil {
			// A business-rule rejection, not a race: surfaced unchanged,
			// never retried.
			return Result[E]{Attempts: attempt}, err
		}

		if len(newEvents) == 0 {
			return Result[E]{Revision: loadedRevision, Attempts: attempt}, nil
		}

		storedEvents, err := storedEventsFrom(codec, newEvents, settings)
		if err != nil {
			return Result[E]{Attempts: attempt}, err
		}

		newRevision, err := store.Append(ctx, streamID, expected, storedEvents...)
		if err == nil {
			return Result[E]{Events: newEvents, Revision: newRevision, Attempts: attempt}, nil
		}

		if !errors.Is(err, eventstream.ErrConcurrencyConflict) {
			return Result[E]{Attempts: attempt}, err
		}

		if attempt > settings.config.MaxRetries() {
			settings.recordMaxRetriesReached(ctx, command.CommandType(), err)
			settings.warnContext(ctx, "command execution exhausted retry budget",
				LogAttrCommandType, command.CommandType(),
				LogAttrStreamID, streamID.String(),
				LogAttrAttempt, attempt,
			)

			return Result[E]{Attempts: attempt}, errors.Join(ErrMaxRetriesExceeded, err)
		}

		delay := settings.config.jitteredBackoffDelay(attempt)

		settings.recordRetry(ctx, command.CommandType(), attempt, delay, err)
		settings.infoContext(ctx, "concurrency conflict, retrying command",
			LogAttrCommandType, command.CommandType(),
			LogAttrStreamID, streamID.String(),
			LogAttrAttempt, attempt,
			LogAttrDelay, delay.String(),
		)

		select {
		case <-time.After(delay):
			// continue with the next attempt
		case <-ctx.Done():
			return Result[E]{Attempts: attempt}, ctx.Err()
		}
	}
}

// loadState reads the stream and folds its history into the aggregate state,
// deriving the expected revision for the subsequent append.
func loadState[E Event, S State[E, S]](
	ctx context.Context,
	store eventstream.Store,
	codec Codec[E],
	command Command[E, S],
) (S, eventstream.ExpectedRevision, eventstream.RevisionUint, error) {
	empty := command.EmptyState()

	recorded, err := store.ReadStream(ctx, command.EventStreamID())
	if errors.Is(err, eventstream.ErrStreamNotFound) {
		return empty, eventstream.ExpectNoStream(), 0, nil
	}

	if err != nil {
		return empty, eventstream.ExpectedRevision{}, 0, err
	}

	if len(recorded) == 0 {
		return empty, eventstream.ExpectNoStream(), 0, nil
	}

	history := make([]E, 0, len(recorded))

	for _, recordedEvent := range recorded {
		event, decodeErr := codec.Decode(recordedEvent.EventType, recordedEvent.PayloadJSON)
		if decodeErr != nil {
			return empty, eventstream.ExpectedRevision{}, 0, decodeErr
		}

		history = append(history, event)
	}

	lastPosition := recorded[len(recorded)-1].Position

	return Reconstruct(empty, history...), eventstream.ExpectRevision(lastPosition), lastPosition, nil
}

// storedEventsFrom encodes the produced events and stamps each with tracking
// metadata and an occurrence timestamp.
func storedEventsFrom[E Event](codec Codec[E], events []E, settings executeSettings) (eventstream.StoredEvents, error) {
	storedEvents := make(eventstream.StoredEvents, 0, len(events))

	for _, event := range events {
		payloadJSON, err := codec.Encode(event)
		if err != nil {
			return nil, err
		}

		messageID := uuid.New()
		causationID, correlationID := messageID, messageID

		if settings.hasMetadataIDs {
			causationID, correlationID = settings.causationID, settings.correlationID
		}

		metadataJSON, err := BuildEventMetadata(messageID, causationID, correlationID).toJSON()
		if err != nil {
			return nil, err
		}

		occurredAt := settings.clock().UTC()
		if timestamped, ok := any(event).(TimestampedEvent); ok {
			occurredAt = timestamped.HasOccurredAt()
		}

		storedEvent, err := eventstream.BuildStoredEvent(event.EventType(), occurredAt, payloadJSON, metadataJSON)
		if err != nil {
			return nil, err
		}

		storedEvents = append(storedEvents, storedEvent)
	}

	return storedEvents, nil
}

// recordRetry tracks one retry attempt and its backoff delay.
func (s executeSettings) recordRetry(ctx context.Context, commandType string, attempt int, delay time.Duration, err error) {
	if s.metricsCollector == nil {
		return
	}

	retryLabels := BuildRetryLabels(commandType, attempt, errorTypeOf(err))
	delayLabels := map[string]string{
		LogAttrCommandType: commandType,
		LabelAttemptNumber: retryLabels[LabelAttemptNumber],
	}

	if contextual, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, ExecuteRetriesMetric, retryLabels)
		contextual.RecordDurationContext(ctx, ExecuteRetryDelayMetric, delay, delayLabels)

		return
	}

	s.metricsCollector.IncrementCounter(ExecuteRetriesMetric, retryLabels)
	s.metricsCollector.RecordDuration(ExecuteRetryDelayMetric, delay, delayLabels)
}

// recordMaxRetriesReached tracks retry exhaustion with the final error type.
func (s executeSettings) recordMaxRetriesReached(ctx context.Context, commandType string, err error) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		LogAttrCommandType:  commandType,
		LabelFinalErrorType: errorTypeOf(err),
	}

	if contextual, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, ExecuteMaxRetriesReachedMetric, labels)

		return
	}

	s.metricsCollector.IncrementCounter(ExecuteMaxRetriesReachedMetric, labels)
}

func (s executeSettings) infoContext(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s executeSettings) warnContext(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

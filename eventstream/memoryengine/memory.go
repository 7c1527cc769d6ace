package memoryengine

import (
	"context"
	"sync"
	"time"

	"github.com/cmdstream/cmdstream-go/eventstream"
	"github.com/cmdstream/cmdstream-go/execute"
)

// Metric names emitted by the engine.
const (
	ReadStreamDurationMetric   = "memoryengine_read_stream_duration_seconds"
	AppendDurationMetric       = "memoryengine_append_duration_seconds"
	ConcurrencyConflictsMetric = "memoryengine_concurrency_conflicts_total"
)

// EventStore is an in-memory implementation of eventstream.Store.
//
// Streams are per-key ordered slices of recorded events; a single mutex
// serializes appends so the expected-revision check and the append itself
// form one atomic step. Reads return copies, so callers can hold results
// across later appends.
type EventStore struct {
	mu      sync.RWMutex
	streams map[string]eventstream.RecordedEvents

	logger           execute.Logger
	contextualLogger execute.ContextualLogger
	metricsCollector execute.MetricsCollector
	clock            func() time.Time
}

// NewEventStore creates a new in-memory EventStore with optional configuration.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		streams: make(map[string]eventstream.RecordedEvents),
		clock:   time.Now,
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// ReadStream returns all events of the stream in position order.
// Returns eventstream.ErrStreamNotFound when the stream does not exist.
func (es *EventStore) ReadStream(
	ctx context.Context,
	streamID eventstream.StreamID,
) (eventstream.RecordedEvents, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := es.clock()

	es.mu.RLock()
	stream, ok := es.streams[streamID.String()]
	recorded := make(eventstream.RecordedEvents, len(stream))
	copy(recorded, stream)
	es.mu.RUnlock()

	es.recordDuration(ctx, ReadStreamDurationMetric, es.clock().Sub(start))

	if !ok || len(recorded) == 0 {
		return nil, eventstream.ErrStreamNotFound
	}

	es.debugContext(ctx, "read stream",
		execute.LogAttrStreamID, streamID.String(),
		"events", len(recorded),
		"consistency", eventstream.GetConsistencyLevel(ctx).String(),
	)

	return recorded, nil
}

// Append atomically appends the given events iff the stream's current
// revision matches the expected revision, assigning contiguous zero-based
// positions. Returns eventstream.ErrConcurrencyConflict on a mismatch.
func (es *EventStore) Append(
	ctx context.Context,
	streamID eventstream.StreamID,
	expected eventstream.ExpectedRevision,
	storedEvents ...eventstream.StoredEvent,
) (eventstream.RevisionUint, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := es.clock()

	es.mu.Lock()
	defer es.mu.Unlock()

	key := streamID.String()
	stream := es.streams[key]

	if conflictErr := checkExpectedRevision(stream, expected); conflictErr != nil {
		es.incrementCounter(ctx, ConcurrencyConflictsMetric, map[string]string{
			execute.LogAttrStreamID: key,
		})
		es.infoContext(ctx, "concurrency conflict on append",
			execute.LogAttrStreamID, key,
			"expected", expected.String(),
			"actual", actualRevisionString(stream),
		)

		return 0, conflictErr
	}

	nextPosition := eventstream.RevisionUint(len(stream))

	for _, storedEvent := range storedEvents {
		stream = append(stream, eventstream.RecordedEvent{
			StoredEvent: storedEvent,
			Position:    nextPosition,
		})
		nextPosition++
	}

	es.streams[key] = stream

	es.recordDuration(ctx, AppendDurationMetric, es.clock().Sub(start))
	es.debugContext(ctx, "appended events",
		execute.LogAttrStreamID, key,
		"events", len(storedEvents),
		"revision", nextPosition-1,
	)

	return nextPosition - 1, nil
}

// checkExpectedRevision validates the append precondition against the
// stream's current contents.
func checkExpectedRevision(
	stream eventstream.RecordedEvents,
	expected eventstream.ExpectedRevision,
) error {
	if !expected.StreamExists() {
		if len(stream) > 0 {
			return eventstream.ErrConcurrencyConflict
		}

		return nil
	}

	if len(stream) == 0 {
		return eventstream.ErrConcurrencyConflict
	}

	if stream[len(stream)-1].Position != expected.Revision() {
		return eventstream.ErrConcurrencyConflict
	}

	return nil
}

func actualRevisionString(stream eventstream.RecordedEvents) string {
	if len(stream) == 0 {
		return "no stream"
	}

	return eventstream.ExpectRevision(stream[len(stream)-1].Position).String()
}

func (es *EventStore) recordDuration(ctx context.Context, metric string, duration time.Duration) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(execute.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, nil)
		return
	}

	es.metricsCollector.RecordDuration(metric, duration, nil)
}

func (es *EventStore) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(execute.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	es.metricsCollector.IncrementCounter(metric, labels)
}

func (es *EventStore) debugContext(ctx context.Context, msg string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if es.logger != nil {
		es.logger.Debug(msg, args...)
	}
}

func (es *EventStore) infoContext(ctx context.Context, msg string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

// Ensure EventStore implements eventstream.Store.
var _ eventstream.Store = (*EventStore)(nil)

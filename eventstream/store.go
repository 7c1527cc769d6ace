package eventstream

import (
	"context"
	"errors"
)

var (
	// ErrStreamNotFound is returned by ReadStream when the stream has no
	// events yet. This is a first-class outcome for new aggregates, not a
	// failure.
	ErrStreamNotFound = errors.New("event stream not found")

	// ErrConcurrencyConflict is returned by Append when the stream's current
	// revision does not match the expected revision, i.e. a concurrent
	// writer appended first.
	ErrConcurrencyConflict = errors.New("concurrency conflict, stream revision did not match expected revision")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached. It is terminal from the core's perspective and never retried
	// internally.
	ErrStoreUnavailable = errors.New("event store is unavailable")
)

// Store is the port the command-execution engine depends on. Implementations
// must guarantee that Append is an atomic compare-and-append on the stream
// revision; the store is the sole arbiter of append ordering.
type Store interface {
	// ReadStream returns all events of the stream from position 0 to the
	// current head, in position order. Returns ErrStreamNotFound when the
	// stream does not exist.
	ReadStream(ctx context.Context, streamID StreamID) (RecordedEvents, error)

	// Append atomically appends the given events iff the stream's current
	// revision matches the expected revision, and returns the stream's new
	// revision. Returns ErrConcurrencyConflict on a mismatch; no partial
	// append may occur.
	Append(
		ctx context.Context,
		streamID StreamID,
		expected ExpectedRevision,
		storedEvents ...StoredEvent,
	) (RevisionUint, error)
}

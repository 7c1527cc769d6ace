// Package eventstream provides the core abstractions the command-execution
// engine needs from an event store: stream identities, store-neutral event
// DTOs, expected-revision preconditions, and the Store port itself.
//
// The package deliberately contains no concrete driver. A Store
// implementation owns transport, authentication, and durability; this
// package only defines the contract:
//   - ReadStream returns the full ordered history of one stream, with
//     ErrStreamNotFound as a first-class outcome for new aggregates.
//   - Append atomically appends iff the stream's current revision matches
//     the given ExpectedRevision, failing with ErrConcurrencyConflict
//     otherwise.
//
// Key types:
//   - StreamID: validated, collision-resistant stream handle
//   - StoredEvent: scalar DTO used to append events
//   - RecordedEvent: a StoredEvent plus its store-assigned position
//   - ExpectedRevision: the optimistic-concurrency precondition
//
// Common usage pattern:
//
//	recorded, err := store.ReadStream(ctx, streamID)
//	if errors.Is(err, eventstream.ErrStreamNotFound) {
//		// new aggregate, first write must use ExpectNoStream()
//	}
//
//	revision, err := store.Append(ctx, streamID, expected, storedEvent)
//	if errors.Is(err, eventstream.ErrConcurrencyConflict) {
//		// another writer won the race, re-read and retry
//	}
package eventstream

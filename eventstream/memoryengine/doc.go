// Package memoryengine provides an in-memory eventstream.Store engine with
// full optimistic-concurrency semantics: atomic compare-and-append on the
// stream revision, contiguous zero-based positions, and ErrStreamNotFound as
// a first-class outcome for new streams.
//
// The engine keeps everything in process memory and is intended for tests,
// examples, and local development; it is deliberately not a durable event
// store. It is safe for concurrent use. A single mutex serializes appends,
// making the engine the sole arbiter of append ordering, exactly as the
// Store contract requires.
package memoryengine

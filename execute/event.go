package execute

import "time"

// Event represents a domain event produced by a command and replayed during
// state reconstruction. Events are immutable facts; the type name must be
// stable because it is persisted as the serialization discriminator and used
// for routing during replay.
type Event interface {
	// EventType returns the stable logical type name of this event.
	EventType() string
}

// TimestampedEvent is implemented by events that record when they occurred.
// The execution engine uses this timestamp for the stored event; events
// without it are stamped with the engine's clock at append time.
type TimestampedEvent interface {
	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}

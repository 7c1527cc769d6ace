package eventstream

import "context"

// ConsistencyLevel defines the consistency requirements for Store reads.
type ConsistencyLevel int

const (
	// StrongConsistency requires reads from the primary node to ensure
	// read-after-write consistency. This is the default for Store
	// operations: the command-execution engine performs read-check-write
	// cycles and must see its own appends immediately.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from replicas, trading consistency
	// for performance. Suitable for pure query paths that can tolerate
	// slightly stale data.
	EventualConsistency
)

// contextKey is a private type to prevent context key collisions.
type contextKey string

// ConsistencyLevelKey is the context key used to store consistency level preferences.
const ConsistencyLevelKey contextKey = "eventstream.consistency_level"

// WithStrongConsistency returns a context that signals Store reads should go
// to the primary node. The execution engine sets this before every stream
// read, since a stale read would only surface as a concurrency conflict after
// a wasted append round trip.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that signals Store reads may use
// replica nodes.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel extracts the consistency level from the context.
// If no consistency level is set, it returns StrongConsistency as the safe
// default for event sourcing scenarios.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

// String provides a string representation of ConsistencyLevel for logging.
func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}

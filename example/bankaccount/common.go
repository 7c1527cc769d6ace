package bankaccount

import (
	"time"

	"github.com/cmdstream/cmdstream-go/execute"
)

// Instead of implementing full value objects, some alias types and helper
// methods are used here ...

// AccountIDString represents an account identifier.
type AccountIDString = string

// Cents represents a monetary amount in cents.
type Cents = int64

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and
// microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// Event is the variant type of all bank account domain events.
type Event interface {
	execute.Event

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}

package execute

import "github.com/cmdstream/cmdstream-go/eventstream"

// Command represents the intent to change an event-sourced aggregate.
//
// A command holds its own domain parameters together with the state snapshot
// it was built or reloaded against. Commands are value types: WithState
// yields a new command instance carrying updated state, which the execution
// engine uses to rebuild the command before each attempt without mutating
// the original.
type Command[E Event, S State[E, S]] interface {
	// CommandType returns the type identifier for this command, used for
	// logging and metrics labels.
	CommandType() string

	// EventStreamID identifies the stream this command targets.
	EventStreamID() eventstream.StreamID

	// EmptyState returns the aggregate's starting state, used when no prior
	// stream exists.
	EmptyState() S

	// Handle is the pure decision logic over the command's held state.
	// It produces the events that represent the effect of the command, or a
	// domain-specific error that is never retried. Returning no events and
	// no error is a valid idempotent outcome: nothing is appended.
	Handle() ([]E, error)

	// WithState returns a copy of the command carrying the given state.
	WithState(state S) Command[E, S]
}

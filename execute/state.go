package execute

// State represents aggregate state that can be advanced by applying events.
// Apply must be a pure function: no side effects, no hidden I/O,
// deterministic for the same event. S is the implementing type itself,
// so Apply returns a plain value rather than an interface.
type State[E Event, S any] interface {
	// Apply returns the state after the given event.
	Apply(event E) S
}

// Reconstruct folds the given events over the empty state, in order.
// The current state of an aggregate is defined as exactly this fold over all
// events of its stream; an empty sequence yields the empty state unchanged.
//
// The execution engine calls this before every command attempt, including
// retries, so a decision is never made from prior-attempt state.
func Reconstruct[E Event, S State[E, S]](empty S, events ...E) S {
	state := empty

	for _, event := range events {
		state = state.Apply(event)
	}

	return state
}

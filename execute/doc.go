// Package execute implements command execution for event-sourced aggregates.
//
// Given a command, Execute loads the aggregate's current state by replaying
// its event stream, invokes the command's pure decision logic to produce new
// events, and appends them under an expected-revision precondition. When a
// concurrent writer wins the race, the whole cycle (re-read, re-fold,
// re-decide) is repeated with exponential backoff, bounded by Config.
//
// The package defines three small contracts the client domain implements:
//
//   - Event: a domain event with a stable logical type name
//   - State: a pure fold over events, starting from an empty value
//   - Command: a unit of intent that holds the state snapshot it was
//     reloaded against and produces zero or more events, or a domain error
//
// Serialization to and from the store-neutral payload goes through a Codec;
// JSONCodec is the provided registry-based implementation.
//
// Common usage pattern:
//
//	config, err := execute.BuildConfig(execute.WithMaxRetries(3))
//	if err != nil {
//		// handle configuration error
//	}
//
//	result, err := execute.Execute[account.Event, account.State](
//		ctx, store, codec, command, execute.WithConfig(config))
//	if err != nil {
//		// domain errors surface unchanged; conflicts only surface as
//		// execute.ErrMaxRetriesExceeded after the budget is spent
//	}
package execute

package eventstream

import "fmt"

// RevisionUint is a type alias for uint64, representing the position of an
// event within its stream. The revision of a stream is the position of its
// last event; it doubles as the optimistic-concurrency token.
type RevisionUint = uint64

// ExpectedRevision is the precondition for an append: either the stream must
// not exist yet (first write), or it must currently be at an exact revision.
//
// It should only be constructed with ExpectNoStream or ExpectRevision.
type ExpectedRevision struct {
	revision     RevisionUint
	streamExists bool
}

// ExpectNoStream builds the precondition for the first write to a stream.
func ExpectNoStream() ExpectedRevision {
	return ExpectedRevision{}
}

// ExpectRevision builds the precondition that the stream is currently at
// exactly the given revision.
func ExpectRevision(revision RevisionUint) ExpectedRevision {
	return ExpectedRevision{revision: revision, streamExists: true}
}

// StreamExists reports whether the precondition requires the stream to exist.
func (e ExpectedRevision) StreamExists() bool {
	return e.streamExists
}

// Revision returns the exact revision the stream is expected to be at.
// Only meaningful when StreamExists is true.
func (e ExpectedRevision) Revision() RevisionUint {
	return e.revision
}

// String provides a representation of the precondition for logging and errors.
func (e ExpectedRevision) String() string {
	if !e.streamExists {
		return "no stream"
	}

	return fmt.Sprintf("revision %d", e.revision)
}

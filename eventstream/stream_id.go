package eventstream

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidStreamID is returned when a stream identifier cannot be parsed.
var ErrInvalidStreamID = errors.New("stream id is not a valid uuid")

// StreamID uniquely names one event stream (one aggregate instance).
// It is immutable once created; many commands may target the same StreamID.
type StreamID struct {
	id uuid.UUID
}

// NewStreamID produces a fresh, collision-resistant stream identifier.
func NewStreamID() StreamID {
	return StreamID{id: uuid.New()}
}

// StreamIDFromUUID wraps an existing UUID as a StreamID.
// Useful when the aggregate's natural identifier already is a UUID.
func StreamIDFromUUID(id uuid.UUID) StreamID {
	return StreamID{id: id}
}

// ParseStreamID validates the textual form of a stream identifier.
func ParseStreamID(text string) (StreamID, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return StreamID{}, errors.Join(ErrInvalidStreamID, err)
	}

	return StreamID{id: id}, nil
}

// String returns the canonical textual form of the stream identifier.
func (s StreamID) String() string {
	return s.id.String()
}

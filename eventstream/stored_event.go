package eventstream

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// StoredEvents is an alias type for a slice of StoredEvent.
type StoredEvents = []StoredEvent

// StoredEvent is a DTO (data transfer object) used to append events to a Store.
//
// It is built on scalars to be completely agnostic of the implementation of
// domain events in the client code.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildStoredEvent
//   - BuildStoredEventWithEmptyMetadata
type StoredEvent struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildStoredEvent is a factory method for StoredEvent.
//
// It populates the StoredEvent with the given scalar input.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildStoredEvent(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (StoredEvent, error) {
	if !json.Valid(payloadJSON) {
		return StoredEvent{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return StoredEvent{}, ErrInvalidMetadataJSON
	}

	return StoredEvent{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildStoredEventWithEmptyMetadata is a factory method for StoredEvent.
//
// It populates the StoredEvent with the given scalar input and creates valid
// empty JSON for MetadataJSON. Returns an error if payloadJSON is not valid JSON.
func BuildStoredEventWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (StoredEvent, error) {
	return BuildStoredEvent(eventType, occurredAt, payloadJSON, []byte("{}"))
}

// RecordedEvents is an alias type for a slice of RecordedEvent.
type RecordedEvents = []RecordedEvent

// RecordedEvent is a StoredEvent as read back from a Store, enriched with the
// store-assigned position within its stream. Positions are monotonic,
// zero-based and never mutated after the append succeeded.
type RecordedEvent struct {
	StoredEvent
	Position RevisionUint
}

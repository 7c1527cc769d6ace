package execute

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEncodingEventFailed is returned when a domain event cannot be
	// serialized to its store-neutral payload.
	ErrEncodingEventFailed = errors.New("encoding domain event failed")

	// ErrDecodingEventFailed is returned when a stored payload cannot be
	// turned back into a domain event during replay.
	ErrDecodingEventFailed = errors.New("decoding stored event failed")

	// ErrUnknownEventType is returned when replay encounters an event type
	// no decoder is registered for. This is a hard error: silently skipping
	// an event would corrupt state reconstruction.
	ErrUnknownEventType = errors.New("unknown event type")
)

// Codec converts domain events to and from their store-neutral payloads.
// The round-trip law Decode(e.EventType(), Encode(e)) == e must hold for all
// representable events.
type Codec[E Event] interface {
	Encode(event E) ([]byte, error)
	Decode(eventType string, payloadJSON []byte) (E, error)
}

// DecodeFunc unmarshals one event type's payload back into a domain event.
type DecodeFunc[E Event] func(payloadJSON []byte) (E, error)

// JSONCodec is a registry-based Codec: every event type registers the
// function that decodes its payload, keyed by the logical type name.
// Encoding uses plain JSON marshaling of the event value.
type JSONCodec[E Event] struct {
	decoders map[string]DecodeFunc[E]
}

// NewJSONCodec creates an empty JSONCodec.
func NewJSONCodec[E Event]() *JSONCodec[E] {
	return &JSONCodec[E]{
		decoders: make(map[string]DecodeFunc[E]),
	}
}

// Register adds a decode function for the given event type, replacing any
// previous registration. It returns the codec to allow chained registration.
func (c *JSONCodec[E]) Register(eventType string, decode DecodeFunc[E]) *JSONCodec[E] {
	if decode == nil {
		panic("execute: nil decode function registered for event type " + eventType)
	}

	c.decoders[eventType] = decode

	return c
}

// Encode serializes the event to its JSON payload.
func (c *JSONCodec[E]) Encode(event E) ([]byte, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Join(ErrEncodingEventFailed, err)
	}

	return payloadJSON, nil
}

// Decode looks up the decoder registered for eventType and applies it.
// Unrecognized event types are a hard error.
func (c *JSONCodec[E]) Decode(eventType string, payloadJSON []byte) (E, error) {
	var zero E

	decode, ok := c.decoders[eventType]
	if !ok {
		return zero, errors.Join(ErrDecodingEventFailed, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType))
	}

	event, err := decode(payloadJSON)
	if err != nil {
		return zero, errors.Join(ErrDecodingEventFailed, err)
	}

	return event, nil
}

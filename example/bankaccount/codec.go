package bankaccount

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/cmdstream/cmdstream-go/execute"
)

// ErrUnmarshalingEventFailed is returned when an event payload cannot be unmarshaled.
var ErrUnmarshalingEventFailed = errors.New("unmarshaling bank account event failed")

// NewCodec creates the codec for all bank account events.
func NewCodec() *execute.JSONCodec[Event] {
	return execute.NewJSONCodec[Event]().
		Register(AccountOpenedEventType, unmarshalAccountOpened).
		Register(AmountDepositedEventType, unmarshalAmountDeposited).
		Register(AmountWithdrawnEventType, unmarshalAmountWithdrawn)
}

func unmarshalAccountOpened(payloadJSON []byte) (Event, error) {
	payload := new(AccountOpened)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return nil, errors.Join(ErrUnmarshalingEventFailed, err)
	}

	return *payload, nil
}

func unmarshalAmountDeposited(payloadJSON []byte) (Event, error) {
	payload := new(AmountDeposited)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return nil, errors.Join(ErrUnmarshalingEventFailed, err)
	}

	return *payload, nil
}

func unmarshalAmountWithdrawn(payloadJSON []byte) (Event, error) {
	payload := new(AmountWithdrawn)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return nil, errors.Join(ErrUnmarshalingEventFailed, err)
	}

	return *payload, nil
}

package eventstream_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdstream/cmdstream-go/eventstream"
)

func Test_BuildStoredEvent(t *testing.T) {
	occurredAt := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "valid payload and metadata",
			payloadJSON:  []byte(`{"Owner":"Anna","Balance":1000}`),
			metadataJSON: []byte(`{"MessageID":"m-1"}`),
			expectedErr:  nil,
		},
		{
			name:         "invalid payload json",
			payloadJSON:  []byte(`{"Owner":`),
			metadataJSON: []byte(`{}`),
			expectedErr:  eventstream.ErrInvalidPayloadJSON,
		},
		{
			name:         "empty payload json",
			payloadJSON:  []byte(``),
			metadataJSON: []byte(`{}`),
			expectedErr:  eventstream.ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata json",
			payloadJSON:  []byte(`{}`),
			metadataJSON: []byte(`not json`),
			expectedErr:  eventstream.ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			storedEvent, err := eventstream.BuildStoredEvent("AccountOpened", occurredAt, tt.payloadJSON, tt.metadataJSON)

			// assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "AccountOpened", storedEvent.EventType)
			assert.Equal(t, occurredAt, storedEvent.OccurredAt)
			assert.Equal(t, tt.payloadJSON, storedEvent.PayloadJSON)
			assert.Equal(t, tt.metadataJSON, storedEvent.MetadataJSON)
		})
	}
}

func Test_BuildStoredEventWithEmptyMetadata(t *testing.T) {
	// setup
	occurredAt := time.Now()

	// act
	storedEvent, err := eventstream.BuildStoredEventWithEmptyMetadata("AccountOpened", occurredAt, []byte(`{}`))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), storedEvent.MetadataJSON)
}

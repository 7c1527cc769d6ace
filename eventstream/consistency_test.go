package eventstream_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmdstream/cmdstream-go/eventstream"
)

func Test_GetConsistencyLevel_DefaultsToStrong(t *testing.T) {
	level := eventstream.GetConsistencyLevel(context.Background())

	assert.Equal(t, eventstream.StrongConsistency, level)
}

func Test_ConsistencyLevel_ContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	strongCtx := eventstream.WithStrongConsistency(ctx)
	assert.Equal(t, eventstream.StrongConsistency, eventstream.GetConsistencyLevel(strongCtx))

	eventualCtx := eventstream.WithEventualConsistency(ctx)
	assert.Equal(t, eventstream.EventualConsistency, eventstream.GetConsistencyLevel(eventualCtx))

	overriddenCtx := eventstream.WithStrongConsistency(eventualCtx)
	assert.Equal(t, eventstream.StrongConsistency, eventstream.GetConsistencyLevel(overriddenCtx))
}

func Test_ConsistencyLevel_String(t *testing.T) {
	assert.Equal(t, "strong", eventstream.StrongConsistency.String())
	assert.Equal(t, "eventual", eventstream.EventualConsistency.String())
	assert.Equal(t, "unknown", eventstream.ConsistencyLevel(99).String())
}

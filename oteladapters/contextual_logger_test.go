package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/cmdstream/cmdstream-go/oteladapters"
)

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("test")

	assert.NotNil(t, logger)
}

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// setup
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message", "level", "debug")
	logger.InfoContext(ctx, "info message", "level", "info")
	logger.WarnContext(ctx, "warn message", "level", "warn")
	logger.ErrorContext(ctx, "error message", "level", "error")

	// assert
	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func Test_SlogBridgeLogger_WithAttributes(t *testing.T) {
	// setup
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	// act
	logger.InfoContext(context.Background(), "retrying command",
		"command_type", "DepositAmount",
		"attempt", 2,
		"delay", "200ms",
	)

	// assert
	output := buf.String()
	assert.Contains(t, output, "retrying command")
	assert.Contains(t, output, `"command_type":"DepositAmount"`)
	assert.Contains(t, output, `"attempt":2`)
	assert.Contains(t, output, `"delay":"200ms"`)
}

func Test_NewOTelLogger_Construction(t *testing.T) {
	otelLogger := noop.NewLoggerProvider().Logger("test")

	logger := oteladapters.NewOTelLogger(otelLogger)

	assert.NotNil(t, logger)
}

func Test_OTelLogger_AllLevels(t *testing.T) {
	// setup
	otelLogger := noop.NewLoggerProvider().Logger("test")
	logger := oteladapters.NewOTelLogger(otelLogger)
	ctx := context.Background()

	// act + assert: must not panic on any level
	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug message", "key", "value")
		logger.InfoContext(ctx, "info message", "key", "value")
		logger.WarnContext(ctx, "warn message", "key", "value")
		logger.ErrorContext(ctx, "error message", "key", "value")
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	// setup
	otelLogger := noop.NewLoggerProvider().Logger("test")
	logger := oteladapters.NewOTelLogger(otelLogger)
	ctx := context.Background()

	// act + assert
	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "mixed value types",
			"string", "text",
			"number", 123,
			"float", 45.67,
			"boolean", false,
		)
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "odd number of args", "key1", "value1", "dangling")
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "no args at all")
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "non-string key", 42, "value")
	})
}

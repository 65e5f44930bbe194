package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))

	logger := NewLogger("json")
	ctx := StoreLoggerInContext(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}

func TestLocalDevHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLocalDevHandler(&buf)).With("document_id", 1)

	logger.Info("updated document")

	assert.Contains(t, buf.String(), "INFO updated document")
	assert.Contains(t, buf.String(), "document_id=1")
}

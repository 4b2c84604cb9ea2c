package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_RendersMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug))

	logger.Info("extraction complete", "pages", 3, "format", "pdf")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "extraction complete")
	assert.Contains(t, out, "pages")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, `"pdf"`)
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Debug("should be suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestHandler_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug))

	ctx := WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "analyze started")

	assert.Contains(t, buf.String(), "[req-42]")
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug)).With("component", "pipeline")

	logger.Info("stage done")

	out := buf.String()
	assert.Contains(t, out, "component")
	assert.Contains(t, out, `"pipeline"`)
}

func TestRequestID_AbsentReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}

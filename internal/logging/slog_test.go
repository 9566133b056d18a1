package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewSlogLogger(l), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLogger_Info(t *testing.T) {
	log, buf := newBufLogger()
	log.Info(context.Background(), "hello", "k", "v")

	rec := lastRecord(t, buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "v", rec["k"])
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufLogger()
	child := log.With("component", "store")
	child.Warn(context.Background(), "careful")

	rec := lastRecord(t, buf)
	assert.Equal(t, "careful", rec["msg"])
	assert.Equal(t, "store", rec["component"])
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json outside dev", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "prod", "info").Info("document registered", "document_id", "doc-001")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "document registered", line["msg"])
		assert.Equal(t, "doc-001", line["document_id"])
		assert.Equal(t, "contium", line["service"])
	})

	t.Run("text in dev", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "dev", "info").Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "prod", "warn")
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

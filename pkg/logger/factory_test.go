package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("visible")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "visible", entry["msg"])
	})

	t.Run("text format produces key=value output", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("static attributes appear on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "recordkit")),
		)

		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "recordkit", entry["service"])
	})

	t.Run("development preset logs debug in text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("recordkit"), logger.WithOutput(&buf))

		log.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production preset logs info as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("recordkit"), logger.WithOutput(&buf))

		log.Info("ready")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "production", entry["env"])
	})
}

func TestWithFormat(t *testing.T) {
	t.Run("panics on invalid format", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(zerolog.New(&buf))

	logger.Info("game recorded",
		String("date", "2024/02/05"),
		Int("game", 2),
		Float64("average", 187.5),
		Bool("valid", true),
		Err(errors.New("boom")),
	)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "game recorded", got["message"])
	assert.Equal(t, "2024/02/05", got["date"])
	assert.Equal(t, 2.0, got["game"])
	assert.Equal(t, 187.5, got["average"])
	assert.Equal(t, true, got["valid"])
	assert.Equal(t, "boom", got["error"])
}

func TestNewConsoleLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsoleLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Zero(t, buf.Len(), "info is below warn")

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewConsoleLogger(&buf, "loud")
	require.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Error("ignored", Any("k", 1))
}

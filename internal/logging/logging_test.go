package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/config"
)

func restoreLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestNew_JSON(t *testing.T) {
	restoreLevel(t)
	var buf bytes.Buffer

	logger, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str("side", "player").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "player", entry["side"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	restoreLevel(t)
	var buf bytes.Buffer

	logger, err := New(config.LoggingConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("Battle started")

	assert.Contains(t, buf.String(), "Battle started")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_Errors(t *testing.T) {
	restoreLevel(t)

	_, err := New(config.LoggingConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	restoreLevel(t)

	require.NoError(t, SetLevel("TRACE"))
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel("error"))
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("verbose"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

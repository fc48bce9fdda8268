package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_WritesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{App: "jornada-api", Version: "1.2.0", Env: "test", Level: "info", Output: &buf})

	log.Debug("hidden")
	log.Info("record created", slog.String("cedula", "11111111"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "jornada-api", line["app"])
	assert.Equal(t, "1.2.0", line["version"])
	assert.Equal(t, "test", line["env"])
	assert.Equal(t, "11111111", line["cedula"])
	assert.NotContains(t, buf.String(), "hidden")
}

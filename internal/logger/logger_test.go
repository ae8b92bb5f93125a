package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taxengine/internal/config"
	"taxengine/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("verbose"))
}

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithSink(config.LogConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

	log.Debug("hidden")
	log.Info("gst.Calculate: computed", zap.String("supplier_state", "27"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "gst.Calculate: computed", entry["msg"])
	assert.Equal(t, "27", entry["supplier_state"])
}

func TestNewWithSink_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithSink(config.LogConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))

	log.Debug("tds.Assess: below threshold")
	require.NoError(t, log.Sync())
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "tds.Assess: below threshold")
}

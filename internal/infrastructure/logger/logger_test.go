package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithOutput(&config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("file", "blacklist.csv").Warn("reference table missing")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "blacklist.csv", entry["file"])
	assert.Equal(t, "warning", entry["level"])
}

func TestNewWithOutput_Errors(t *testing.T) {
	_, err := NewWithOutput(&config.Config{Log: config.LogConfig{Level: "loud"}}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithOutput(&config.Config{Log: config.LogConfig{Level: "info", Format: "xml"}}, &bytes.Buffer{})
	assert.Error(t, err)
}

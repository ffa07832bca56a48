package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	t.Setenv("AIDYNEDIT_LOG_LEVEL", "")
	assert.Equal(t, "warn", GetLogLevel())
	t.Setenv("AIDYNEDIT_LOG_LEVEL", "trace")
	assert.Equal(t, "trace", GetLogLevel())
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("AIDYNEDIT_JSON_LOG", "")
	var buf bytes.Buffer
	log := NewLogger("aidynedit", "warn", &buf)
	log.Info("quiet")
	assert.Empty(t, buf.String())
	log.Warn("loud", "addr", "0x01FC7EA4")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "addr=0x01FC7EA4")
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv("AIDYNEDIT_JSON_LOG", "1")
	var buf bytes.Buffer
	NewLogger("aidynedit", "info", &buf).Info("saved", "kind", "spell")

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "saved", line["@message"])
	assert.Equal(t, "spell", line["kind"])
	assert.Equal(t, "aidynedit", line["@module"])
}

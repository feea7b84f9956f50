package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "json")

	l.Info("Plant service: plant created", "plant_id", "p-1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Plant service: plant created", rec["msg"])
	assert.Equal(t, "p-1", rec["plant_id"])
}

func TestNewWithFormat_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 4, "text")

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "text").With("component", "feed")

	l.Info("started")
	assert.Contains(t, buf.String(), "component=feed")
}

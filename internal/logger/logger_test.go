package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("contract", "indefinite").Msg("settlement computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "settlement computed", entry["message"])
	assert.Equal(t, "indefinite", entry["contract"])
	assert.Equal(t, "nomina-settlement", entry["service"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriterDevelopmentIsVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	log.Debug().Msg("calendar loaded")
	assert.Contains(t, buf.String(), "calendar loaded")
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "repuestos-api", Out: &buf})

	l.Component("ledger").Info().Str("article", "P1").Msg("entrada registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "repuestos-api", line["service"])
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, "P1", line["article"])
	assert.Equal(t, "entrada registrada", line["message"])
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})
	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("cualquiera"))
}

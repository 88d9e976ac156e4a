package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{JSON: true, Out: &buf})
	log.Debug().Msg("hidden")
	log.Info().Str("locale", "de").Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"locale":"de"`)
	assert.Contains(t, buf.String(), `"message":"visible"`)

	buf.Reset()

	log = New(Config{JSON: true, Debug: true, Out: &buf})
	log.Debug().Msg("shown")

	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{Out: &buf})
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

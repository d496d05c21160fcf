package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Int("valid", 2).Msg("processed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "processed")
	assert.Contains(t, out, "valid=2")

	buf.Reset()
	log = New(&buf, true)
	log.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitWriter(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	InitWriter(buf, false, true)
	assert.Equal(log.WarnLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(buf.String())

	log.Warn("shown", "line", 3)
	assert.Contains(buf.String(), "shown")
	assert.Contains(buf.String(), "line=3")

	buf.Reset()
	InitWriter(buf, true, true)
	assert.Equal(log.DebugLevel, log.GetLevel())

	log.Debug("visible")
	assert.Contains(buf.String(), "visible")
}

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestWarnLevelHidesDebugAndInfo(t *testing.T) {
	buf := withBuffer(t)
	SetLevel(LevelWarn)

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)

	assert.Equal(t, "[WARN] warn 3\n", buf.String())
}

func TestVerbose(t *testing.T) {
	buf := withBuffer(t)
	SetVerbose(true)
	assert.True(t, IsVerbose())

	Debug("store loaded %d documents", 4)
	assert.Contains(t, buf.String(), "[DEBUG] store loaded 4 documents")

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestVerboseOffRestoresConfiguredLevel(t *testing.T) {
	buf := withBuffer(t)
	SetLevel(LevelInfo)
	SetVerbose(true)
	SetVerbose(false)

	Debug("hidden")
	Info("shown")
	assert.Equal(t, "[INFO] shown\n", buf.String())

	SetLevel(LevelOff)
	SetVerbose(true)
	SetVerbose(false)
	Warn("silent")
	assert.Equal(t, "[INFO] shown\n", buf.String())
}

func TestOffSilencesEverything(t *testing.T) {
	buf := withBuffer(t)
	SetLevel(LevelOff)

	Warn("nothing")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

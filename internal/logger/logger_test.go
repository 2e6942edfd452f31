package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestDebugGatedByVerbose(t *testing.T) {
	buf := capture(t)

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
}

func TestWarnPrintsWithoutVerbose(t *testing.T) {
	buf := capture(t)

	SetVerbose(false)
	Warn("model answer rejected: %s", "not JSON")
	assert.Contains(t, buf.String(), "[WARN] model answer rejected: not JSON")
}

func TestSectionHeader(t *testing.T) {
	buf := capture(t)

	SetVerbose(true)
	Section("Ingest")
	assert.Contains(t, buf.String(), "=== Ingest ===")
}

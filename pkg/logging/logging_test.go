package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Init is once-per-process, so everything that depends on ordering lives
// in one test.
func TestInitOnce(t *testing.T) {
	var first bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "microcache.log")

	require.NoError(t, Init(WithStream(&first), WithFile(logPath)))
	assert.Contains(t, first.String(), "successfully initialized logger")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "successfully initialized logger")

	// second init refuses, warns through the first destination, and does
	// not touch the new one
	var second bytes.Buffer
	require.NoError(t, Init(WithStream(&second)))
	assert.Contains(t, first.String(), "refusing to do it again")
	assert.Empty(t, second.String())

	l := Logger()
	l.Info().Msg("still going to the first stream")
	assert.Contains(t, first.String(), "still going to the first stream")

	require.NoError(t, Close())
}

func TestLoggerNeverFails(t *testing.T) {
	// loggers built on Output write unconditionally to whatever
	// destination is current (or discard them when none was ever
	// configured); either way the write cannot fail
	l := Logger()
	l.Debug().Msg("dropped or delivered, never fails")
}

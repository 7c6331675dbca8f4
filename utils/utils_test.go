package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleName(t *testing.T) {
	assert.Equal(t, "click-000000", SampleName("click", 0))
	assert.Equal(t, "white_noise-000042", SampleName("white_noise", 42))
	assert.Equal(t, "sine-1234567", SampleName("sine", 1234567))
}

func TestMkDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, MkDir(dir))
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	// existing directories are left alone
	require.NoError(t, MkDir(dir))
}

func TestInitLogger(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	var out bytes.Buffer
	InitLogger(INFO, &out)
	assert.NotSame(t, prev, Log)
	Log.Debug("hidden %d", 1)
	Log.Info("info %s", "shown")
	Log.Warn("careful")
	Log.Error("failed: %v", "boom")

	logged := out.String()
	assert.NotContains(t, logged, "hidden")
	assert.Contains(t, logged, "info shown")
	assert.Contains(t, logged, "WARN")
	assert.Contains(t, logged, "failed: boom")

	out.Reset()
	InitLogger(DEBUG, &out)
	Log.Debug("debug %d", 2)
	assert.Contains(t, out.String(), "debug 2")

	out.Reset()
	InitLogger(99, &out)
	Log.Debug("dropped")
	Log.Info("unknown levels fall back to info")
	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "fall back to info")
}

package logfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayFilename(t *testing.T) {
	ts := time.Date(2026, 8, 29, 13, 37, 0, 0, time.UTC)
	assert.Equal(t, "server_2026-08-29.log", TodayFilename(ts))
}

func TestResolveDirHonorsEnv(t *testing.T) {
	t.Setenv(EnvLogDir, "/var/log/pentaview")
	assert.Equal(t, "/var/log/pentaview", ResolveDir())

	t.Setenv(EnvLogDir, "")
	assert.Equal(t, filepath.Join(".", "logs"), ResolveDir())
}

func TestWriterAppendsToDailyFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvLogDir, dir)

	w, err := NewWriter()
	require.NoError(t, err)

	_, err = w.Write([]byte("line one\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("line two\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, TodayFilename(time.Now())))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(content))
}

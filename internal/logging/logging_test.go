package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmenu/internal/config"
)

func TestStderrSink(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.LoggingConfig{Level: "info"}, &buf, "abc")
	require.NoError(t, err)
	defer l.Close()

	l.Debug("hidden")
	l.Info("loaded taskfile", "tasks", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded taskfile")
	assert.Contains(t, out, "session=abc")
	assert.Contains(t, out, "tasks=3")
}

func TestMuteAndUnmute(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.LoggingConfig{Level: "debug"}, &buf, "")
	require.NoError(t, err)

	l.Mute()
	l.Info("while drawing")
	assert.Empty(t, buf.String())

	l.Unmute()
	l.Info("after drawing")
	assert.Contains(t, buf.String(), "after drawing")
	assert.NotContains(t, buf.String(), "while drawing")
}

func TestFileSink(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "taskmenu.log")
	l, err := New(config.LoggingConfig{Level: "debug", File: path}, &stderr, "abc")
	require.NoError(t, err)

	l.Mute()
	l.Debug("launching task", "task", "build")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=\"launching task\"")
	assert.Contains(t, string(content), "task=build")
	assert.Contains(t, string(content), "session=abc")
	assert.Empty(t, stderr.String())
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, nil, "")
	assert.Error(t, err)
}

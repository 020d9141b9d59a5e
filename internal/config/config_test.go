package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROWKIT_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.Screen.Animated)
	assert.Equal(t, 250*time.Millisecond, c.Screen.AnimationDuration())
	assert.Equal(t, 2.0, c.Screen.InsetHorizontal)
	assert.Equal(t, 1.0, c.Screen.InsetVertical)
	assert.Equal(t, LayoutConstrained, c.Screen.Layout)
	assert.False(t, c.Journal.Enabled)
	assert.Equal(t, 64, c.Journal.BatchSize)
	assert.Equal(t, 500*time.Millisecond, c.Journal.FlushInterval)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rowkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
screen:
  animated: false
  layout: unconstrained
journal:
  enabled: true
  path: /tmp/rowkit-test.db
  flush_interval: 2s
log:
  level: debug
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.Screen.Animated)
	assert.Equal(t, LayoutUnconstrained, c.Screen.Layout)
	assert.True(t, c.Journal.Enabled)
	assert.Equal(t, "/tmp/rowkit-test.db", c.Journal.Path)
	assert.Equal(t, 2*time.Second, c.Journal.FlushInterval)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 250, c.Screen.AnimationMs, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rowkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen:\n  animation_ms: 100\n"), 0o644))
	t.Setenv("ROWKIT_CONFIG", path)
	t.Setenv("ROWKIT_SCREEN_ANIMATION_MS", "40")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, c.Screen.AnimationMs)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateLayout(t *testing.T) {
	isolate(t)
	t.Setenv("ROWKIT_SCREEN_LAYOUT", "sideways")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nplayers:\n  mark-a: Alice\nui:\n  mouse: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win, the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "Alice", conf.Players.MarkA)
		assert.Equal(t, "Player 2", conf.Players.MarkB)
		assert.True(t, conf.UI.Mouse)
		assert.Equal(t, "42", conf.UI.Colors.Active)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and a player name in the environment
		t.Setenv("PLAYER_B", "Bob")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: defaults and environment are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "ultimate-tictactoe.log", conf.LogFile)
		assert.Equal(t, "Bob", conf.Players.MarkB)
		assert.False(t, conf.UI.Mouse)
	})

	t.Run("Panics on a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"8081\"\n"), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the explicit value wins and defaults fill the rest
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 10, conf.Match.TickRate)
		assert.Equal(t, 5*time.Second, conf.Match.GracePeriod)
		assert.Equal(t, 10, conf.Match.ListLimit)
		assert.Equal(t, "global_leaderboard", conf.Leaderboard.ID)
		assert.Equal(t, 20, conf.Leaderboard.Limit)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestLoad(t *testing.T) {
	t.Run("Reads the shipped config", func(t *testing.T) {
		conf, err := Load(filepath.Join("..", "..", "config.yml"))

		require.NoError(t, err)
		assert.Equal(t, "arena1", conf.Node)
		assert.Equal(t, "tic_tac_toe", conf.Match.Module)
		assert.Equal(t, time.Hour, conf.Match.SnapshotTTL)
		assert.Equal(t, int64(4096), conf.Session.MaxMessageSize)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("node: from-file\n"), 0o600))
		t.Setenv("NODE_NAME", "from-env")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "from-env", conf.Node)
	})

	t.Run("Rejects a negative tick rate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("match:\n  tick-rate: -1\n"), 0o600))

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSession_PingPeriod(t *testing.T) {
	session := Session{PongWait: 60 * time.Second}

	assert.Equal(t, 54*time.Second, session.PingPeriod())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every other field falls back to its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeProcess, conf.Mode)
		assert.Equal(t, []int{0, 1, 2}, conf.Players)
		assert.Equal(t, "/tmp/player_pipe_", conf.PipePrefix)
		assert.Equal(t, ScoreBackendFile, conf.ScoreBackend)
		assert.Equal(t, time.Second, conf.SchedulerInterval)
		assert.Equal(t, 100*time.Millisecond, conf.DrainInterval)
		assert.Equal(t, "scores.db", conf.SQLite.Path)
		assert.Empty(t, conf.NATS.URL)
	})

	t.Run("Reads explicit values", func(t *testing.T) {
		// Given: a config file overriding the run shape
		path := writeConfig(t, `
mode: inproc
players: [0, 2]
score-backend: redis
worker-interval: 250ms
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, ModeInProc, conf.Mode)
		assert.Equal(t, []int{0, 2}, conf.Players)
		assert.Equal(t, ScoreBackendRedis, conf.ScoreBackend)
		assert.Equal(t, 250*time.Millisecond, conf.WorkerInterval)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects an out of range player slot", func(t *testing.T) {
		// Given: a config naming slot 3
		path := writeConfig(t, "players: [0, 3]\n")

		// When: loading it
		_, err := Load(path)

		// Then: validation fails
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: threads\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Mode:              ModeProcess,
			Players:           []int{0, 1},
			ScoreBackend:      ScoreBackendFile,
			SchedulerInterval: time.Second,
			WorkerInterval:    time.Second,
			DrainInterval:     time.Millisecond,
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("Rejects duplicate players", func(t *testing.T) {
		conf := base()
		conf.Players = []int{1, 1}

		assert.ErrorIs(t, conf.Validate(), ErrInvalidPlayer)
	})

	t.Run("Rejects an empty player list", func(t *testing.T) {
		conf := base()
		conf.Players = nil

		assert.ErrorIs(t, conf.Validate(), ErrNoPlayers)
	})

	t.Run("Rejects a zero interval", func(t *testing.T) {
		conf := base()
		conf.DrainInterval = 0

		assert.ErrorIs(t, conf.Validate(), ErrInvalidInterval)
	})

	t.Run("Rejects an unknown score backend", func(t *testing.T) {
		conf := base()
		conf.ScoreBackend = "postgres"

		assert.ErrorIs(t, conf.Validate(), ErrUnknownScoreBackend)
	})
}

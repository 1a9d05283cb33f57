package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Uses defaults when there is no file", func(t *testing.T) {
		// Given: no config file and no overrides
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the defaults should apply
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000", conf.APIBaseURL)
		assert.Equal(t, "3000", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, SessionStoreMemory, conf.Session.Store)
		assert.Equal(t, 24*time.Hour, conf.Session.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, DefaultSessionSecret, conf.Session.Secret)
		assert.True(t, conf.Session.UsesDefaultSecret())
	})

	t.Run("Environment sets the session secret", func(t *testing.T) {
		// Given: a SESSION_SECRET override
		t.Setenv("SESSION_SECRET", "a-real-secret")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the default secret is no longer in use
		require.NoError(t, err)
		assert.False(t, conf.Session.UsesDefaultSecret())
	})

	t.Run("Environment overrides the API base URL", func(t *testing.T) {
		// Given: an API_BASE_URL override
		t.Setenv("API_BASE_URL", "http://game.internal:9000")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the override should win
		require.NoError(t, err)
		assert.Equal(t, "http://game.internal:9000", conf.APIBaseURL)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8081\"\nsession:\n  store: redis\n  ttl: 1h\nredis:\n  host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: file values and defaults should be combined
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, SessionStoreRedis, conf.Session.Store)
		assert.Equal(t, time.Hour, conf.Session.TTL)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "http://localhost:8000", conf.APIBaseURL)
	})
}

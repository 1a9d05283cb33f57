package application

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/config"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/repository"
)

func TestNewSessionRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	t.Run("Memory store", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreMemory, TTL: time.Hour}}

		sessions, closeSessions, err := newSessionRepository(ctx, logger, conf)
		require.NoError(t, err)
		defer closeSessions()

		assert.IsType(t, &repository.MemorySession{}, sessions)
	})

	t.Run("Redis store without host", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreRedis}}

		_, _, err := newSessionRepository(ctx, logger, conf)

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown store", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: "sqlite"}}

		_, _, err := newSessionRepository(ctx, logger, conf)

		assert.ErrorIs(t, err, ErrUnknownSessionStore)
	})
}

func TestCheckSessionSecret(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Redis store refuses the default secret", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreRedis, Secret: config.DefaultSessionSecret}}

		assert.ErrorIs(t, checkSessionSecret(logger, conf), ErrDefaultSessionSecret)
	})

	t.Run("Redis store refuses an empty secret", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreRedis}}

		assert.ErrorIs(t, checkSessionSecret(logger, conf), ErrDefaultSessionSecret)
	})

	t.Run("Memory store only warns", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreMemory, Secret: config.DefaultSessionSecret}}

		assert.NoError(t, checkSessionSecret(logger, conf))
	})

	t.Run("A configured secret passes", func(t *testing.T) {
		conf := &config.Config{Session: config.Session{Store: config.SessionStoreRedis, Secret: "a-real-secret"}}

		assert.NoError(t, checkSessionSecret(logger, conf))
	})
}

func TestRunApp_DefaultSecretWithRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.Config{
		HTTPPort:   "0",
		APIBaseURL: "http://localhost:8000",
		Session:    config.Session{Store: config.SessionStoreRedis, TTL: time.Hour, Secret: config.DefaultSessionSecret},
		Redis:      config.Redis{Host: "localhost", Port: "6379"},
	}

	assert.ErrorIs(t, RunApp(logger, conf), ErrDefaultSessionSecret)
}

func TestRunApp_InvalidGameServerURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.Config{
		HTTPPort:   "0",
		APIBaseURL: "not a url",
		Session:    config.Session{Store: config.SessionStoreMemory, TTL: time.Hour},
	}

	err := RunApp(logger, conf)

	assert.ErrorContains(t, err, "could not create game server client")
}

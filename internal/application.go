package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/config"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/repository"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/transport/gameapi"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/view"
	"github.com/rocketscienceinc/tictactoe-frontend/transport/rest"
)

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Minute
)

var (
	ErrAddrNotFound         = errors.New("redis address string is empty")
	ErrUnknownSessionStore  = errors.New("unknown session store")
	ErrDefaultSessionSecret = errors.New("session secret must be set (SESSION_SECRET) when sessions are stored in redis")
)

// RunApp - runs the application until SIGINT/SIGTERM or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := checkSessionSecret(log, conf); err != nil {
		return err
	}

	sessions, closeSessions, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeSessions()

	gameClient, err := gameapi.New(conf.APIBaseURL, nil)
	if err != nil {
		return fmt.Errorf("could not create game server client: %w", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("could not load templates: %w", err)
	}

	shell := usecase.NewShell(logger, sessions, gameClient)
	server := rest.New(logger, conf, shell, renderer)

	log.Info("Game server", "url", conf.APIBaseURL, "session_store", conf.Session.Store)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := server.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// checkSessionSecret refuses the default cookie secret for the redis store and warns about it otherwise.
func checkSessionSecret(log *slog.Logger, conf *config.Config) error {
	if !conf.Session.UsesDefaultSecret() {
		return nil
	}

	if conf.Session.Store == config.SessionStoreRedis {
		return ErrDefaultSessionSecret
	}

	log.Warn("session cookies are signed with the default secret, set SESSION_SECRET")

	return nil
}

func newSessionRepository(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
) (repository.SessionRepository, func(), error) {
	switch conf.Session.Store {
	case config.SessionStoreMemory:
		sessions := repository.NewMemorySessionRepository(conf.Session.TTL)
		go sessions.RunJanitor(ctx, janitorInterval)

		return sessions, func() {}, nil
	case config.SessionStoreRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewSessionRepository(redisStorage.Connection, conf.Session.TTL), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, conf.Session.Store)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/transport/gameapi"
)

const (
	MessageFetchFailed    = "Failed to fetch game state."
	MessageResetFailed    = "Failed to start/reset game."
	MessageInvalidMove    = "Invalid move."
	MessageUnreachable    = "Failed to reach game server."
	MessageBadResponse    = "Unexpected response from game server."
	MessageGameStartReset = "Game started/reset."
)

// loadingExpiry bounds how long a stored loading flag blocks the session.
const loadingExpiry = 5 * time.Minute

type gameClient interface {
	GetGame(ctx context.Context) (*entity.GameState, error)
	ResetGame(ctx context.Context) (*entity.GameState, error)
	MakeMove(ctx context.Context, move entity.Move) (*entity.GameState, error)
}

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

// Shell owns the UI state of every browser session and talks to the game server on its behalf.
type Shell struct {
	logger   *slog.Logger
	sessions sessionRepo
	game     gameClient
	now      func() time.Time

	// mu serialises the read-modify-write steps on stored sessions.
	mu sync.Mutex
}

func NewShell(logger *slog.Logger, sessions sessionRepo, game gameClient) *Shell {
	return &Shell{
		logger:   logger.With("component", "shell"),
		sessions: sessions,
		game:     game,
		now:      time.Now,
	}
}

// action describes one network operation of the shell.
type action struct {
	method string
	// allowed returning false turns the action into a no-op.
	allowed func(session *entity.Session) bool
	call    func(ctx context.Context, session *entity.Session) (*entity.GameState, error)
	info    string
	failure func(err error) string
}

// Load returns the session, creating it when unknown. The first load of a session fetches the game.
func (that *Shell) Load(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	session, err := that.getOrCreate(ctx, id)
	that.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if session.Loaded || session.Loading {
		return session, nil
	}

	session, err = that.FetchState(ctx, id)
	if errors.Is(err, apperror.ErrActionInProgress) {
		// a concurrent load started the initial fetch first.
		return session, nil
	}

	return session, err
}

// FetchState - GET the game snapshot and replace the session's game with it.
func (that *Shell) FetchState(ctx context.Context, id string) (*entity.Session, error) {
	return that.run(ctx, id, action{
		method: "FetchState",
		call: func(ctx context.Context, _ *entity.Session) (*entity.GameState, error) {
			return that.game.GetGame(ctx)
		},
		failure: func(err error) string {
			return failureMessage(err, MessageFetchFailed)
		},
	})
}

// StartOrReset - POST a new game.
func (that *Shell) StartOrReset(ctx context.Context, id string) (*entity.Session, error) {
	return that.run(ctx, id, action{
		method: "StartOrReset",
		call: func(ctx context.Context, _ *entity.Session) (*entity.GameState, error) {
			return that.game.ResetGame(ctx)
		},
		info: MessageGameStartReset,
		failure: func(err error) string {
			return failureMessage(err, MessageResetFailed)
		},
	})
}

// SubmitMove - sends a move for the player whose turn it is. Moves on occupied squares, outside the
// board, or after the game ended never reach the server.
func (that *Shell) SubmitMove(ctx context.Context, id string, row, col int) (*entity.Session, error) {
	return that.run(ctx, id, action{
		method: "SubmitMove",
		allowed: func(session *entity.Session) bool {
			return session.CanMove(row, col)
		},
		call: func(ctx context.Context, session *entity.Session) (*entity.GameState, error) {
			return that.game.MakeMove(ctx, entity.Move{
				Row:    row,
				Col:    col,
				Player: session.Game.CurrentPlayer,
			})
		},
		failure: moveFailureMessage,
	})
}

// ToggleTheme flips between light and dark. It never touches the network and works while loading.
func (that *Shell) ToggleTheme(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Theme = session.Theme.Toggle()
	if err = that.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *Shell) run(ctx context.Context, id string, act action) (*entity.Session, error) {
	log := that.logger.With("method", act.method, "session", id)

	session, proceed, err := that.begin(ctx, id, act)
	if err != nil || !proceed {
		if errors.Is(err, apperror.ErrActionInProgress) {
			log.Debug("action refused while loading")
		}
		return session, err
	}

	// The browser going away does not cancel a request that already started.
	ctx = context.WithoutCancel(ctx)

	state, callErr := act.call(ctx, session)

	that.mu.Lock()
	defer that.mu.Unlock()

	// Re-read so that changes made meanwhile (a theme toggle) survive.
	current, err := that.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	if callErr != nil {
		log.Warn("game server call failed", "error", callErr)
		current.Error = act.failure(callErr)
		current.Info = ""
	} else {
		current.Apply(*state)
		current.Error = ""
		current.Info = act.info
	}

	current.Loading = false
	current.LoadingSince = time.Time{}
	current.Loaded = true

	if err = that.save(ctx, current); err != nil {
		return nil, err
	}

	log.Debug("action finished", "failed", callErr != nil)

	return current, nil
}

// begin marks the session as loading. It reports false when the action turned out to be a no-op.
func (that *Shell) begin(ctx context.Context, id string, act action) (*entity.Session, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.getOrCreate(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if session.Loading {
		return session, false, apperror.ErrActionInProgress
	}

	if act.allowed != nil && !act.allowed(session) {
		return session, false, nil
	}

	session.Loading = true
	session.LoadingSince = that.now()
	session.Error = ""

	if err = that.save(ctx, session); err != nil {
		return nil, false, err
	}

	return session, true, nil
}

func (that *Shell) getOrCreate(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessions.GetByID(ctx, id)
	if err == nil {
		if session.LoadingExpired(that.now(), loadingExpiry) {
			that.logger.Warn("dropping stale loading flag", "session", id, "since", session.LoadingSince)
			session.Loading = false
			session.LoadingSince = time.Time{}
		}
		return session, nil
	}

	if !errors.Is(err, apperror.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session = entity.NewSession(id)
	if err = that.save(ctx, session); err != nil {
		return nil, err
	}

	that.logger.Info("session created", "session", id)

	return session, nil
}

func (that *Shell) save(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = that.now()

	if err := that.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func failureMessage(err error, rejected string) string {
	var respErr *gameapi.ResponseError

	switch {
	case errors.As(err, &respErr):
		return rejected
	case errors.Is(err, gameapi.ErrDecodeResponse):
		return MessageBadResponse
	default:
		return MessageUnreachable
	}
}

func moveFailureMessage(err error) string {
	var respErr *gameapi.ResponseError
	if errors.As(err, &respErr) && len(respErr.Details) > 0 {
		return MessageInvalidMove + " " + respErr.DetailMessages()
	}

	return failureMessage(err, MessageInvalidMove)
}

package apperror

import "errors"

var (
	ErrActionInProgress    = errors.New("another action is still in progress")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidBoard        = errors.New("board must be a 3x3 grid")
	ErrInvalidMark         = errors.New("invalid mark")
	ErrUnknownResultStatus = errors.New("unknown result status")
	ErrInvalidGameState    = errors.New("invalid game state")
)

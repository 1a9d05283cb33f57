package entity

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (that Theme) Toggle() Theme {
	if that == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Session is everything one browser sees: the last game snapshot plus the transient UI flags.
type Session struct {
	ID      string    `json:"id"`
	Theme   Theme     `json:"theme"`
	Game    GameState `json:"game"`
	Loading bool      `json:"loading"`
	// LoadingSince is when the pending action started; zero when nothing is pending.
	LoadingSince time.Time `json:"loading_since"`
	Error        string    `json:"error,omitempty"`
	Info         string    `json:"info,omitempty"`
	// Loaded is set once the initial fetch has been attempted.
	Loaded    bool      `json:"loaded"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Theme:     ThemeLight,
		Game:      NewGameState(),
		UpdatedAt: time.Now(),
	}
}

// CanMove reports whether a move on the square may be sent to the server.
func (that *Session) CanMove(row, col int) bool {
	return that.Game.Result.IsInProgress() && !that.Game.Board.IsOccupied(row, col)
}

// Apply replaces the game wholesale with a server snapshot.
func (that *Session) Apply(state GameState) {
	that.Game = state
}

// LoadingExpired reports whether the pending action started more than after ago. Such a flag is left over
// from a process that stopped before finishing the action.
func (that *Session) LoadingExpired(now time.Time, after time.Duration) bool {
	return that.Loading && !that.LoadingSince.IsZero() && now.Sub(that.LoadingSince) > after
}

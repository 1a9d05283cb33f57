package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
)

const (
	StatusLoading = "loading"
	StatusError   = "error"
	StatusWon     = "won"
	StatusDraw    = "draw"
	StatusTurn    = "turn"
)

type StatusView struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	// Mark is the emphasised part of the line (winner or player to move).
	Mark string `json:"mark,omitempty"`
}

type PageView struct {
	Theme            string     `json:"theme"`
	ThemeToggleLabel string     `json:"theme_toggle_label"`
	ThemeToggleAria  string     `json:"theme_toggle_aria"`
	StartLabel       string     `json:"start_label"`
	ControlsDisabled bool       `json:"controls_disabled"`
	Status           StatusView `json:"status"`
	Board            BoardView  `json:"board"`
	Info             string     `json:"info,omitempty"`
}

func RenderPage(session *entity.Session) PageView {
	game := session.Game

	startLabel := "New Game"
	if game.Result.IsInProgress() {
		startLabel = "Restart"
	}

	return PageView{
		Theme:            string(session.Theme),
		ThemeToggleLabel: themeToggleLabel(session.Theme),
		ThemeToggleAria:  fmt.Sprintf("Switch to %s mode", session.Theme.Toggle()),
		StartLabel:       startLabel,
		ControlsDisabled: session.Loading,
		Status:           renderStatus(session),
		Board:            RenderBoard(game.Board, game.Result, game.CurrentPlayer, session.Loading),
		Info:             session.Info,
	}
}

// renderStatus picks one line: loading wins over error, error over the game result.
func renderStatus(session *entity.Session) StatusView {
	result := session.Game.Result

	switch {
	case session.Loading:
		return StatusView{Kind: StatusLoading, Text: "Loading..."}
	case session.Error != "":
		return StatusView{Kind: StatusError, Text: session.Error}
	case result.IsWon():
		return StatusView{Kind: StatusWon, Text: "Winner:", Mark: string(result.WinnerMark())}
	case result.IsDraw():
		return StatusView{Kind: StatusDraw, Text: "Draw! No more moves possible."}
	default:
		return StatusView{Kind: StatusTurn, Text: "Current turn:", Mark: string(session.Game.CurrentPlayer)}
	}
}

func themeToggleLabel(theme entity.Theme) string {
	if theme == entity.ThemeDark {
		return "Light"
	}
	return "Dark"
}

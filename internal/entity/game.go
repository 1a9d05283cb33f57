package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
)

const BoardSize = 3

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// Cell addresses a square of the board by zero-based row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is a row, column or diagonal triple.
type Line [BoardSize]Cell

// WinCombos - rows first, then columns, then the two diagonals.
var WinCombos = []Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Contains reports whether the line passes through the given square.
func (that Line) Contains(row, col int) bool {
	for _, cell := range that {
		if cell.Row == row && cell.Col == col {
			return true
		}
	}
	return false
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

func (that Mark) validate() error {
	switch that {
	case EmptyCell, PlayerX, PlayerO:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(that))
	}
}

type Board [BoardSize][BoardSize]Mark

// UnmarshalJSON accepts a 3x3 array of marks; null squares are read as empty.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]*string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	if len(rows) != BoardSize {
		return fmt.Errorf("%w: got %d rows", apperror.ErrInvalidBoard, len(rows))
	}

	var board Board
	for i, row := range rows {
		if len(row) != BoardSize {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i, len(row))
		}

		for j, value := range row {
			if value == nil {
				continue
			}

			mark := Mark(*value)
			if err := mark.validate(); err != nil {
				return fmt.Errorf("cell %d,%d: %w", i, j, err)
			}
			board[i][j] = mark
		}
	}

	*that = board
	return nil
}

// InBounds reports whether row and col address a square of the board.
func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// IsOccupied reports whether the square holds a mark. Out-of-range squares count as occupied.
func (that *Board) IsOccupied(row, col int) bool {
	if !that.InBounds(row, col) {
		return true
	}
	return !that[row][col].IsEmpty()
}

// WinningLine returns the first line holding three equal non-empty marks.
func (that *Board) WinningLine() (Line, bool) {
	for _, line := range WinCombos {
		a, b, c := line[0], line[1], line[2]
		first := that[a.Row][a.Col]
		if !first.IsEmpty() && first == that[b.Row][b.Col] && first == that[c.Row][c.Col] {
			return line, true
		}
	}

	return Line{}, false
}

type Result struct {
	Status string `json:"status"`
	Winner *Mark  `json:"winner"`
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func (that *Result) UnmarshalJSON(data []byte) error {
	type plain Result

	var result plain
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	switch result.Status {
	case StatusInProgress, StatusWon, StatusDraw:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownResultStatus, result.Status)
	}

	if result.Winner != nil {
		if err := result.Winner.validate(); err != nil {
			return fmt.Errorf("winner: %w", err)
		}
	}

	*that = Result(result)
	return nil
}

func (that Result) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Result) IsWon() bool {
	return that.Status == StatusWon
}

func (that Result) IsDraw() bool {
	return that.Status == StatusDraw
}

// WinnerMark returns the winner or EmptyCell when there is none.
func (that Result) WinnerMark() Mark {
	if that.Winner == nil {
		return EmptyCell
	}
	return *that.Winner
}

// GameState is the snapshot the game server returns for every call.
type GameState struct {
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"current_player"`
	Result        Result `json:"result"`
}

// Validate checks a snapshot beyond what decoding already enforces: the player to move is X or O
// while the game runs, and a won game names its winner.
func (that *GameState) Validate() error {
	if err := that.CurrentPlayer.validate(); err != nil {
		return fmt.Errorf("current player: %w", err)
	}

	switch that.Result.Status {
	case StatusInProgress:
		if that.CurrentPlayer.IsEmpty() {
			return fmt.Errorf("%w: no player to move in a running game", apperror.ErrInvalidGameState)
		}
	case StatusWon:
		if that.Result.WinnerMark().IsEmpty() {
			return fmt.Errorf("%w: won game without a winner", apperror.ErrInvalidGameState)
		}
	case StatusDraw:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownResultStatus, that.Result.Status)
	}

	return nil
}

// NewGameState is the blank board shown before the server has answered.
func NewGameState() GameState {
	return GameState{
		CurrentPlayer: PlayerX,
		Result:        InProgress(),
	}
}

// Move is the body of a move request.
type Move struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Player Mark `json:"player"`
}

// ValidationDetail is one entry of the "detail" list the game server sends with a rejected request.
type ValidationDetail struct {
	Msg string `json:"msg"`
}

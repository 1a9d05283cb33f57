package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
)

// CellView is everything the template needs to draw one square.
type CellView struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight"`
	Disabled  bool   `json:"disabled"`
	Label     string `json:"aria_label"`
}

type BoardView struct {
	Rows        [entity.BoardSize][entity.BoardSize]CellView `json:"rows"`
	Turn        string                                        `json:"turn"`
	WinningLine *entity.Line                                  `json:"winning_line,omitempty"`
}

// RenderBoard lays out the grid. The winning line is only looked for when the result is won, and a
// square is disabled when it is occupied, when disabled is set, or when the game is over.
func RenderBoard(board entity.Board, result entity.Result, turn entity.Mark, disabled bool) BoardView {
	view := BoardView{Turn: string(turn)}

	if result.IsWon() {
		if line, ok := board.WinningLine(); ok {
			view.WinningLine = &line
		}
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			mark := board[row][col]
			highlight := view.WinningLine != nil && view.WinningLine.Contains(row, col)
			cellDisabled := !mark.IsEmpty() || disabled || !result.IsInProgress()

			view.Rows[row][col] = RenderCell(row, col, mark, highlight, cellDisabled)
		}
	}

	return view
}

func RenderCell(row, col int, mark entity.Mark, highlight, disabled bool) CellView {
	label := string(mark)
	if mark.IsEmpty() {
		label = "empty"
	}

	return CellView{
		Row:       row,
		Col:       col,
		Value:     string(mark),
		Highlight: highlight,
		Disabled:  disabled,
		Label:     fmt.Sprintf("Tic Tac Toe cell Row %d Column %d %s", row+1, col+1, label),
	}
}

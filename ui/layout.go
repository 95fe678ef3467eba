package ui

import "snake-arcade/game/types"

const (
	margin     = 10
	statusBar  = 30
	buttonSize = 50
	buttonGap  = 5
	restartW   = 140
	restartH   = 40
)

// Rect is a pixel rectangle
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is an on-screen direction control
type Button struct {
	Label   string
	Command string
	Rect    Rect
}

// Layout places the board, the score bar and the touch controls in a window
type Layout struct {
	Width, Height int
	Status        Rect
	Board         Rect
	Buttons       []Button
	Restart       Rect
}

// NewLayout stacks score bar, board and a cross of direction buttons
func NewLayout(g types.Grid) Layout {
	pad := 3*buttonSize + 2*buttonGap
	width := max(g.Width, pad) + 2*margin

	board := Rect{X: (width - g.Width) / 2, Y: margin + statusBar, W: g.Width, H: g.Height}
	controlsY := board.Y + board.H + margin
	left := (width - pad) / 2
	col := func(i int) int { return left + i*(buttonSize+buttonGap) }
	row2 := controlsY + buttonSize + buttonGap

	return Layout{
		Width:  width,
		Height: row2 + buttonSize + margin,
		Status: Rect{X: margin, Y: margin, W: width - 2*margin, H: statusBar},
		Board:  board,
		Buttons: []Button{
			{Label: "^", Command: "up", Rect: Rect{X: col(1), Y: controlsY, W: buttonSize, H: buttonSize}},
			{Label: "<", Command: "left", Rect: Rect{X: col(0), Y: row2, W: buttonSize, H: buttonSize}},
			{Label: "v", Command: "down", Rect: Rect{X: col(1), Y: row2, W: buttonSize, H: buttonSize}},
			{Label: ">", Command: "right", Rect: Rect{X: col(2), Y: row2, W: buttonSize, H: buttonSize}},
		},
		Restart: Rect{
			X: board.X + (board.W-restartW)/2,
			Y: board.Y + board.H/2 + restartH,
			W: restartW,
			H: restartH,
		},
	}
}

// ButtonAt returns the direction button under a pointer
func (l Layout) ButtonAt(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// CellRect maps a board cell to window pixels
func (l Layout) CellRect(c types.Cell, cellSize int) Rect {
	return Rect{X: l.Board.X + c.X, Y: l.Board.Y + c.Y, W: cellSize, H: cellSize}
}

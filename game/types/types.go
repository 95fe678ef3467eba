package types

import "strings"

// Grid represents the game grid dimensions in pixels
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of cells across
func (g Grid) Cols() int { return g.Width / g.CellSize }

// Rows returns the number of cells down
func (g Grid) Rows() int { return g.Height / g.CellSize }

// Contains reports whether c lies inside the grid bounds
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellAt returns the cell at column col and row row
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// Cell is a grid-aligned position
type Cell struct {
	X, Y int
}

// Add returns c shifted by v
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Velocity is the per-tick displacement of the head
type Velocity struct {
	DX, DY int
}

// IsReverse reports whether v points exactly opposite to o
func (v Velocity) IsReverse(o Velocity) bool {
	return v.DX == -o.DX && v.DY == -o.DY && (v.DX != 0 || v.DY != 0)
}

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Velocity converts a Direction into a displacement of one cell
func (d Direction) Velocity(cellSize int) Velocity {
	switch d {
	case Up:
		return Velocity{DX: 0, DY: -cellSize}
	case Right:
		return Velocity{DX: cellSize, DY: 0}
	case Down:
		return Velocity{DX: 0, DY: cellSize}
	case Left:
		return Velocity{DX: -cellSize, DY: 0}
	default:
		return Velocity{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft returns the heading after a counter-clockwise quarter turn
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return None
	}
}

// TurnRight returns the heading after a clockwise quarter turn
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return None
	}
}

// DirectionOf maps a unit velocity back to its heading
func DirectionOf(v Velocity) Direction {
	switch {
	case v.DX == 0 && v.DY < 0:
		return Up
	case v.DX > 0 && v.DY == 0:
		return Right
	case v.DX == 0 && v.DY > 0:
		return Down
	case v.DX < 0 && v.DY == 0:
		return Left
	default:
		return None
	}
}

// ParseDirection maps a raw host command to a Direction.
// Browser key names, button labels, WASD and vi keys are accepted.
func ParseDirection(cmd string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "arrowup", "up", "w", "k":
		return Up, true
	case "arrowdown", "down", "s", "j":
		return Down, true
	case "arrowleft", "left", "a", "h":
		return Left, true
	case "arrowright", "right", "d", "l":
		return Right, true
	}
	return None, false
}

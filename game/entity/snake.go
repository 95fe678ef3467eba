package entity

import "snake-arcade/game/types"

// Snake holds the body cells, head first
type Snake struct {
	Body     []types.Cell
	Velocity types.Velocity
}

func NewSnake(body []types.Cell, velocity types.Velocity) *Snake {
	cells := make([]types.Cell, len(body))
	copy(cells, body)
	return &Snake{
		Body:     cells,
		Velocity: velocity,
	}
}

// Move prepends newHead to the body
func (s *Snake) Move(newHead types.Cell) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

// NextHead is the cell the head moves into on the next tick
func (s *Snake) NextHead() types.Cell {
	return s.GetHead().Add(s.Velocity)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals c
func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

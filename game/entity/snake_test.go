package entity

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	start := []types.Cell{{X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}}
	s := NewSnake(start, types.Velocity{DX: 20})

	// NewSnake must not alias the caller's slice
	start[0] = types.Cell{X: -1, Y: -1}
	require.Equal(t, types.Cell{X: 200, Y: 200}, s.GetHead())

	s.Move(s.NextHead())
	assert.Equal(t, []types.Cell{{X: 220, Y: 200}, {X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}}, s.Body)

	s.RemoveTail()
	assert.Equal(t, []types.Cell{{X: 220, Y: 200}, {X: 200, Y: 200}, {X: 180, Y: 200}}, s.Body)
	assert.Equal(t, 3, s.Len())
}

func TestSnakeOccupiesAndCells(t *testing.T) {
	s := NewSnake([]types.Cell{{X: 40, Y: 0}, {X: 20, Y: 0}}, types.Velocity{DX: 20})
	assert.True(t, s.Occupies(types.Cell{X: 20, Y: 0}))
	assert.False(t, s.Occupies(types.Cell{X: 0, Y: 0}))

	cells := s.Cells()
	cells[0] = types.Cell{}
	assert.Equal(t, types.Cell{X: 40, Y: 0}, s.GetHead())
}

func TestRemoveTailOnEmptyBody(t *testing.T) {
	s := &Snake{}
	s.RemoveTail()
	assert.Zero(t, s.Len())
}

package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = types.Grid{Width: 400, Height: 400, CellSize: 20}

func TestCheckHeadWall(t *testing.T) {
	cm := NewCollisionManager(grid)
	for _, head := range []types.Cell{{X: -20, Y: 0}, {X: 400, Y: 0}, {X: 0, Y: -20}, {X: 0, Y: 400}} {
		s := entity.NewSnake([]types.Cell{head, {X: 0, Y: 0}}, types.Velocity{})
		assert.Equal(t, WallCollision, cm.CheckHead(s), "%+v", head)
	}
}

func TestCheckHeadSelf(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnake([]types.Cell{{X: 80, Y: 100}, {X: 80, Y: 80}, {X: 100, Y: 80}, {X: 100, Y: 100}, {X: 80, Y: 100}}, types.Velocity{})
	assert.Equal(t, SelfCollision, cm.CheckHead(s))

	s = entity.NewSnake([]types.Cell{{X: 200, Y: 180}, {X: 200, Y: 200}, {X: 180, Y: 200}}, types.Velocity{})
	assert.Equal(t, NoCollision, cm.CheckHead(s))
}

func TestIsDangerIgnoresTail(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnake([]types.Cell{{X: 20, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 40}, {X: 20, Y: 40}}, types.Velocity{DX: 0, DY: 20})
	assert.False(t, cm.IsDanger(types.Cell{X: 20, Y: 40}, s))
	assert.True(t, cm.IsDanger(types.Cell{X: 40, Y: 20}, s))
	assert.True(t, cm.IsDanger(types.Cell{X: -20, Y: 20}, s))
	assert.False(t, cm.IsDanger(types.Cell{X: 0, Y: 20}, s))
}

func TestFoodManagerNeverOnSnake(t *testing.T) {
	small := types.Grid{Width: 60, Height: 60, CellSize: 20}
	snake := entity.NewSnake([]types.Cell{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0},
		{X: 40, Y: 20}, {X: 20, Y: 20}, {X: 0, Y: 20},
		{X: 0, Y: 40}, {X: 20, Y: 40},
	}, types.Velocity{})

	fm := NewFoodManager(42)
	for i := 0; i < 100; i++ {
		food := fm.Place(small, snake.Occupies)
		require.Equal(t, types.Cell{X: 40, Y: 40}, food)
	}
}

func TestFoodManagerAlignedAndInBounds(t *testing.T) {
	fm := NewFoodManager(7)
	seen := map[types.Cell]bool{}
	for i := 0; i < 2000; i++ {
		food := fm.Place(grid, func(types.Cell) bool { return false })
		require.True(t, grid.Contains(food))
		require.Zero(t, food.X%grid.CellSize)
		require.Zero(t, food.Y%grid.CellSize)
		seen[food] = true
	}
	// 2000 draws over 400 cells should cover most of the grid
	assert.Greater(t, len(seen), 300)
}

func TestTurnQueueOnePerTick(t *testing.T) {
	var q TurnQueue
	assert.False(t, q.Pending())
	assert.False(t, q.Enqueue(types.None))

	require.True(t, q.Enqueue(types.Up))
	assert.False(t, q.Enqueue(types.Left))
	assert.True(t, q.Pending())

	d, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, types.Up, d)

	_, ok = q.Dequeue()
	assert.False(t, ok)

	require.True(t, q.Enqueue(types.Left))
	q.Clear()
	assert.False(t, q.Pending())
}

func TestStateManagerRecord(t *testing.T) {
	sm := NewStateManager()
	assert.Zero(t, sm.AverageScore())

	sm.Record(GameRecord{Score: 30, Cause: "wall"})
	sm.Record(GameRecord{Score: 10, Cause: "self"})
	assert.Equal(t, 30, sm.GetHighScore())
	assert.Equal(t, 2, sm.GamesPlayed())
	assert.InDelta(t, 20.0, sm.AverageScore(), 1e-9)

	for i := 0; i < maxHistory+5; i++ {
		sm.Record(GameRecord{Score: i})
	}
	history := sm.GetScoreHistory()
	assert.Len(t, history, maxHistory)
	assert.Equal(t, maxHistory+4, history[len(history)-1].Score)
	assert.Equal(t, maxHistory+4, sm.GetHighScore())
	assert.Equal(t, maxHistory+7, sm.GamesPlayed())
}

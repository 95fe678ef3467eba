package ui

import (
	"testing"
	"time"

	"snake-arcade/clock"
	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cornerFood keeps food out of the way of the test paths
type cornerFood struct{}

func (cornerFood) Place(types.Grid, func(types.Cell) bool) types.Cell {
	return types.Cell{X: 0, Y: 0}
}

func newEngine(t *testing.T) (*game.Engine, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(time.Unix(0, 0))
	e := game.NewEngine(game.DefaultConfig(), game.WithClock(clk), game.WithFoodPlacer(cornerFood{}))
	t.Cleanup(e.Close)
	return e, clk
}

type countingPilot struct{ starts int }

func (p *countingPilot) Start() { p.starts++ }

func TestSessionMessages(t *testing.T) {
	e, clk := newEngine(t)
	s := NewSession(e, nil)

	assert.Equal(t, StartMessage, s.Message(s.Snapshot()))

	require.True(t, s.Input("ArrowUp"))
	assert.Empty(t, s.Message(s.Snapshot()))

	// straight up from row 10 hits the top wall on the 11th tick
	clk.Advance(11 * game.DefaultConfig().InitialSpeed)
	snap := s.Snapshot()
	require.Equal(t, game.GameOver, snap.State)
	assert.Equal(t, "Game Over! Final Score: 0", s.Message(snap))
	assert.Equal(t, "Score: 0  Best: 0", Status(snap))
}

func TestSessionRestart(t *testing.T) {
	e, _ := newEngine(t)
	s := NewSession(e, nil)

	require.True(t, s.Input("d"))
	first := s.Snapshot().Session
	s.Restart()

	snap := s.Snapshot()
	assert.Equal(t, game.NotStarted, snap.State)
	assert.NotEqual(t, first, snap.Session)
}

func TestSessionIgnoresInputUnderPilot(t *testing.T) {
	e, _ := newEngine(t)
	p := &countingPilot{}
	s := NewSession(e, p)

	assert.True(t, s.Autopilot())
	assert.Equal(t, AutopilotMessage, s.Message(s.Snapshot()))
	assert.False(t, s.Input("up"))
	assert.Equal(t, game.NotStarted, e.State())

	s.Restart()
	assert.Equal(t, 1, p.starts)
}

func TestLayoutButtons(t *testing.T) {
	l := NewLayout(types.Grid{Width: 400, Height: 400, CellSize: 20})

	assert.Equal(t, 420, l.Width)
	assert.Equal(t, Rect{X: 10, Y: 40, W: 400, H: 400}, l.Board)
	assert.Greater(t, l.Height, l.Board.Y+l.Board.H)

	for _, b := range l.Buttons {
		got, ok := l.ButtonAt(b.Rect.X+b.Rect.W/2, b.Rect.Y+b.Rect.H/2)
		require.True(t, ok, b.Label)
		assert.Equal(t, b.Command, got.Command)
		assert.False(t, l.Board.Contains(b.Rect.X, b.Rect.Y), "%s overlaps the board", b.Label)

		d, ok := types.ParseDirection(b.Command)
		require.True(t, ok)
		assert.NotEqual(t, types.None, d)
	}

	_, ok := l.ButtonAt(l.Board.X+1, l.Board.Y+1)
	assert.False(t, ok)
}

func TestLayoutNarrowGridFitsControls(t *testing.T) {
	l := NewLayout(types.Grid{Width: 100, Height: 100, CellSize: 20})
	for _, b := range l.Buttons {
		assert.GreaterOrEqual(t, b.Rect.X, 0)
		assert.LessOrEqual(t, b.Rect.X+b.Rect.W, l.Width)
	}
	assert.Equal(t, (l.Width-100)/2, l.Board.X)
}

func TestCellRect(t *testing.T) {
	l := NewLayout(types.Grid{Width: 400, Height: 400, CellSize: 20})
	r := l.CellRect(types.Cell{X: 40, Y: 60}, 20)
	assert.Equal(t, Rect{X: 50, Y: 100, W: 20, H: 20}, r)
}

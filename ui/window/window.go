// Package window hosts the game in a raylib window with keyboard and
// on-screen touch controls.
package window

import (
	"context"
	"log/slog"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/logging"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	title    = "Snake"
	fps      = 60
	fontSize = 20
)

var (
	colorBoard  = rl.Color{R: 24, G: 24, B: 24, A: 255}
	colorGrid   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	colorBody   = rl.Color{R: 0, G: 160, B: 60, A: 255}
	colorHead   = rl.Color{R: 0, G: 210, B: 80, A: 255}
	colorButton = rl.Color{R: 70, G: 70, B: 70, A: 255}
	colorShade  = rl.Color{R: 0, G: 0, B: 0, A: 160}
)

type Window struct {
	session *ui.Session
	layout  ui.Layout
	logger  *slog.Logger
}

func New(ctx context.Context, session *ui.Session) *Window {
	return &Window{
		session: session,
		layout:  ui.NewLayout(session.Snapshot().Grid),
		logger:  logging.FromContext(ctx),
	}
}

// Run opens the window and blocks until it is closed or ctx is done.
// raylib needs the calling goroutine to stay on the main OS thread.
func (w *Window) Run(ctx context.Context) error {
	rl.InitWindow(int32(w.layout.Width), int32(w.layout.Height), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		snap := w.session.Snapshot()
		w.handleInput(snap)
		w.draw(snap)
	}
	return nil
}

var keyCommands = []struct {
	key int32
	cmd string
}{
	{rl.KeyUp, "up"},
	{rl.KeyDown, "down"},
	{rl.KeyLeft, "left"},
	{rl.KeyRight, "right"},
	{rl.KeyW, "w"},
	{rl.KeyA, "a"},
	{rl.KeyS, "s"},
	{rl.KeyD, "d"},
}

func (w *Window) handleInput(snap game.Snapshot) {
	for _, kc := range keyCommands {
		if rl.IsKeyPressed(kc.key) {
			w.session.Input(kc.cmd)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
		w.restart()
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	pos := rl.GetMousePosition()
	x, y := int(pos.X), int(pos.Y)
	if snap.State == game.GameOver && w.layout.Restart.Contains(x, y) {
		w.restart()
		return
	}
	if b, ok := w.layout.ButtonAt(x, y); ok {
		w.session.Input(b.Command)
	}
}

func (w *Window) restart() {
	w.logger.Debug("restart requested")
	w.session.Restart()
}

func (w *Window) draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	l := w.layout
	cs := snap.Grid.CellSize

	rl.DrawText(ui.Status(snap), int32(l.Status.X), int32(l.Status.Y), fontSize, rl.White)

	rl.DrawRectangle(int32(l.Board.X-1), int32(l.Board.Y-1), int32(l.Board.W+2), int32(l.Board.H+2), rl.DarkGray)
	rl.DrawRectangle(int32(l.Board.X), int32(l.Board.Y), int32(l.Board.W), int32(l.Board.H), colorBoard)
	for col := range snap.Grid.Cols() {
		for row := range snap.Grid.Rows() {
			r := l.CellRect(snap.Grid.CellAt(col, row), cs)
			rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), colorGrid)
		}
	}

	w.fillCell(snap.Grid, snap.Food, rl.Red)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		w.fillCell(snap.Grid, snap.Snake[i], color)
	}
	if len(snap.Snake) > 0 && snap.Grid.Contains(snap.Head()) {
		w.drawHeading(l.CellRect(snap.Head(), cs), types.DirectionOf(snap.Velocity))
	}

	for _, b := range l.Buttons {
		drawButton(b.Rect, b.Label, colorButton)
	}

	if msg := w.session.Message(snap); msg != "" {
		rl.DrawRectangle(int32(l.Board.X), int32(l.Board.Y), int32(l.Board.W), int32(l.Board.H), colorShade)
		width := rl.MeasureText(msg, fontSize)
		rl.DrawText(msg,
			int32(l.Board.X)+(int32(l.Board.W)-width)/2,
			int32(l.Board.Y+l.Board.H/2-fontSize),
			fontSize, rl.White)
		if snap.State == game.GameOver {
			drawButton(l.Restart, "Restart", rl.Maroon)
		}
	}
}

// fillCell paints a board cell; the head of a snake that hit the wall is
// outside the board and skipped
func (w *Window) fillCell(g types.Grid, c types.Cell, color rl.Color) {
	if !g.Contains(c) {
		return
	}
	r := w.layout.CellRect(c, g.CellSize)
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), color)
}

// drawHeading marks the head with a triangle pointing where it moves
func (w *Window) drawHeading(r ui.Rect, d types.Direction) {
	x, y := float32(r.X), float32(r.Y)
	size, half := float32(r.W), float32(r.W)/2

	var a, b, c rl.Vector2
	switch d {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	case types.Up:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	default:
		return
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func drawButton(r ui.Rect, label string, color rl.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), color)
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rl.LightGray)
	width := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(r.X)+(int32(r.W)-width)/2, int32(r.Y)+(int32(r.H)-fontSize)/2, fontSize, rl.White)
}

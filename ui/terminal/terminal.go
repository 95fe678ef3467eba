// Package terminal hosts the game in a text terminal. Every board cell is
// two columns wide so the board keeps its square aspect.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/logging"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// board origin: status line on row 0, border on row 1 and column 0
const (
	originX = 1
	originY = 2
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Canvas is the drawing surface of a tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
}

type action int

const (
	actNone action = iota
	actMove
	actRestart
	actQuit
)

type Terminal struct {
	screen  tcell.Screen
	session *ui.Session
	logger  *slog.Logger
}

// NewScreen opens the controlling terminal
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return screen, nil
}

func New(ctx context.Context, screen tcell.Screen, session *ui.Session) *Terminal {
	return &Terminal{
		screen:  screen,
		session: session,
		logger:  logging.FromContext(ctx),
	}
}

// Run draws and polls input until ctx is done or the user quits
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			Draw(t.screen, t.session.Snapshot(), t.session.Message)
			t.screen.Show()
		}
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, cmd := keyAction(ev.Key(), ev.Rune())
		switch act {
		case actQuit:
			return false
		case actRestart:
			t.logger.Debug("restart requested")
			t.session.Restart()
		case actMove:
			t.session.Input(cmd)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// keyAction maps a key press to what the host should do
func keyAction(k tcell.Key, r rune) (action, string) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, ""
	case tcell.KeyEnter:
		return actRestart, ""
	case tcell.KeyUp:
		return actMove, "up"
	case tcell.KeyDown:
		return actMove, "down"
	case tcell.KeyLeft:
		return actMove, "left"
	case tcell.KeyRight:
		return actMove, "right"
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actQuit, ""
		case 'r', 'R', ' ':
			return actRestart, ""
		}
		if _, ok := types.ParseDirection(string(r)); ok {
			return actMove, string(r)
		}
	}
	return actNone, ""
}

// Draw renders one frame of snap onto c
func Draw(c Canvas, snap game.Snapshot, message func(game.Snapshot) string) {
	c.Clear()
	g := snap.Grid
	if g.CellSize <= 0 {
		return
	}
	cols, rows := g.Cols(), g.Rows()
	right := originX + cols*2
	bottom := originY + rows

	drawText(c, 0, 0, ui.Status(snap), styleText)

	for x := originX; x < right; x++ {
		c.SetContent(x, originY-1, '─', nil, styleBorder)
		c.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := originY; y < bottom; y++ {
		c.SetContent(originX-1, y, '│', nil, styleBorder)
		c.SetContent(right, y, '│', nil, styleBorder)
	}
	c.SetContent(originX-1, originY-1, '┌', nil, styleBorder)
	c.SetContent(right, originY-1, '┐', nil, styleBorder)
	c.SetContent(originX-1, bottom, '└', nil, styleBorder)
	c.SetContent(right, bottom, '┘', nil, styleBorder)

	putCell(c, g, snap.Food, '●', ' ', styleFood)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		putCell(c, g, snap.Snake[i], '█', '█', style)
	}

	if msg := message(snap); msg != "" {
		x := originX + (cols*2-len([]rune(msg)))/2
		drawText(c, max(x, 0), originY+rows/2, msg, styleBanner)
		if snap.State == game.GameOver {
			hint := "r: restart  q: quit"
			drawText(c, max(originX+(cols*2-len(hint))/2, 0), originY+rows/2+1, hint, styleText)
		}
	}
}

// putCell draws a board cell; a dead snake's head may sit outside the board
func putCell(c Canvas, g types.Grid, cell types.Cell, left, right rune, style tcell.Style) {
	if !g.Contains(cell) {
		return
	}
	x, y := screenPos(g, cell)
	c.SetContent(x, y, left, nil, style)
	c.SetContent(x+1, y, right, nil, style)
}

// screenPos is the left column and row of a board cell
func screenPos(g types.Grid, cell types.Cell) (int, int) {
	return originX + cell.X/g.CellSize*2, originY + cell.Y/g.CellSize
}

func drawText(c Canvas, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

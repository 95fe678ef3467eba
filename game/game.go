package game

import (
	"log/slog"
	"sync"
	"time"

	"snake-arcade/clock"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logging"

	"github.com/google/uuid"
)

// State is the engine lifecycle
type State int

const (
	NotStarted State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Config holds the rules of a game
type Config struct {
	Grid types.Grid

	// Start is the initial body, head first. Empty means three cells
	// ending at (10,10) in cell units, facing StartDirection.
	Start          []types.Cell
	StartDirection types.Direction

	InitialSpeed   time.Duration
	SpeedStep      time.Duration
	MinSpeed       time.Duration
	ScoreIncrement int
}

func DefaultConfig() Config {
	return Config{
		Grid:           types.Grid{Width: 400, Height: 400, CellSize: 20},
		StartDirection: types.Right,
		InitialSpeed:   150 * time.Millisecond,
		SpeedStep:      5 * time.Millisecond,
		MinSpeed:       50 * time.Millisecond,
		ScoreIncrement: 10,
	}
}

// StartBody resolves the initial snake body
func (c Config) StartBody() []types.Cell {
	if len(c.Start) > 0 {
		return c.Start
	}
	cs := c.Grid.CellSize
	return []types.Cell{
		{X: cs * 10, Y: cs * 10},
		{X: cs * 9, Y: cs * 10},
		{X: cs * 8, Y: cs * 10},
	}
}

// Snapshot is a copy of the engine state for hosts to draw from
type Snapshot struct {
	Session     string
	State       State
	Snake       []types.Cell
	Food        types.Cell
	Velocity    types.Velocity
	Score       int
	HighScore   int
	Speed       time.Duration
	Ticks       uint64
	TurnPending bool
	Cause       manager.CollisionType
	Grid        types.Grid
}

func (s Snapshot) IsGameOver() bool { return s.State == GameOver }

func (s Snapshot) Head() types.Cell {
	if len(s.Snake) == 0 {
		return types.Cell{}
	}
	return s.Snake[0]
}

type Option func(*Engine)

// WithClock sets the clock that drives the tick task
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithFoodPlacer replaces the random food placement
func WithFoodPlacer(p manager.FoodPlacer) Option {
	return func(e *Engine) { e.placer = p }
}

// WithSeed seeds the default random food placement
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.placer = manager.NewFoodManager(seed) }
}

func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithStats shares a session stats store across engines
func WithStats(sm *manager.StateManager) Option {
	return func(e *Engine) { e.stats = sm }
}

// Engine owns all game state. Every method is safe to call from the tick
// timer and from input goroutines; they serialize on one mutex.
type Engine struct {
	mu sync.Mutex

	cfg        Config
	collisions *manager.CollisionManager
	placer     manager.FoodPlacer
	stats      *manager.StateManager
	clock      clock.Clock
	listeners  []Listener
	logger     *slog.Logger

	task      *clock.Task
	epoch     uint64 // bumped per game; ticks from an older timer are dropped
	session   string
	snake     *entity.Snake
	food      types.Cell
	score     int
	speed     time.Duration
	state     State
	turns     manager.TurnQueue
	ticks     uint64
	cause     manager.CollisionType
	startedAt time.Time
}

// NewEngine builds an engine and initializes the first game
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		collisions: manager.NewCollisionManager(cfg.Grid),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = clock.NewReal()
	}
	if e.placer == nil {
		e.placer = manager.NewFoodManager(uint64(time.Now().UnixNano()))
	}
	if e.stats == nil {
		e.stats = manager.NewStateManager()
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	e.Initialize()
	return e
}

// Initialize resets every piece of state and cancels the tick task.
// The new game waits in NotStarted for the first direction input.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTaskLocked()
	e.epoch++
	e.session = uuid.New().String()
	e.snake = entity.NewSnake(e.cfg.StartBody(), e.cfg.StartDirection.Velocity(e.cfg.Grid.CellSize))
	e.score = 0
	e.speed = e.cfg.InitialSpeed
	e.state = NotStarted
	e.turns.Clear()
	e.ticks = 0
	e.cause = manager.NoCollision
	e.food = e.placer.Place(e.cfg.Grid, e.snake.Occupies)

	e.logger.Debug("game initialized", "session", e.session, "food", e.food)
}

// Command parses a raw host command and forwards it to SetDirection.
// Unknown commands are ignored.
func (e *Engine) Command(cmd string) bool {
	d, ok := types.ParseDirection(cmd)
	if !ok {
		return false
	}
	return e.SetDirection(d)
}

// SetDirection queues a turn for the next tick. The first direction input
// of a fresh game starts it. Returns whether the turn was queued.
func (e *Engine) SetDirection(d types.Direction) bool {
	if d == types.None {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case GameOver:
		return false
	case NotStarted:
		e.startLocked()
	}

	if e.turns.Pending() {
		return false
	}
	if d.Velocity(e.cfg.Grid.CellSize).IsReverse(e.snake.Velocity) {
		return false
	}
	return e.turns.Enqueue(d)
}

// Tick advances the simulation by one step. It is a no-op after game over.
func (e *Engine) Tick() {
	e.advance(0)
}

// advance runs one step. A non-zero epoch comes from the tick task and is
// ignored once the game it was armed for has been replaced.
func (e *Engine) advance(epoch uint64) {
	e.mu.Lock()
	if e.state == GameOver || (epoch != 0 && epoch != e.epoch) {
		e.mu.Unlock()
		return
	}

	if d, ok := e.turns.Dequeue(); ok {
		e.snake.Velocity = d.Velocity(e.cfg.Grid.CellSize)
	}

	newHead := e.snake.NextHead()
	e.snake.Move(newHead)

	ate := newHead == e.food
	if ate {
		e.score += e.cfg.ScoreIncrement
		e.food = e.placer.Place(e.cfg.Grid, e.snake.Occupies)
		e.speedUpLocked()
	} else {
		e.snake.RemoveTail()
	}
	e.ticks++

	// The fatal move stays applied: the snake dies in place.
	if cause := e.collisions.CheckHead(e.snake); cause != manager.NoCollision {
		e.gameOverLocked(cause)
	}

	snap := e.snapshotLocked()
	listeners := e.listeners
	e.mu.Unlock()

	for _, l := range listeners {
		if ate {
			l.OnFoodEaten(snap)
		}
		l.OnTick(snap)
		if snap.State == GameOver {
			l.OnGameOver(snap)
		}
	}
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Stats exposes the session results shared by every game of this engine
func (e *Engine) Stats() *manager.StateManager {
	return e.stats
}

// AddListener registers l for subsequent transitions
func (e *Engine) AddListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Close cancels the tick task. The engine can still be driven by Tick.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTaskLocked()
}

func (e *Engine) startLocked() {
	e.state = Running
	e.turns.Clear()
	e.startedAt = e.clock.Now()

	epoch := e.epoch
	e.task = clock.NewTask(e.clock, func() { e.advance(epoch) })
	e.task.Start(e.speed)
	e.logger.Info("game started", "session", e.session, "speed", e.speed)
}

// speedUpLocked shortens the tick interval and re-arms the task so the new
// rate applies from the next tick.
func (e *Engine) speedUpLocked() {
	next := max(e.speed-e.cfg.SpeedStep, e.cfg.MinSpeed)
	if next == e.speed {
		return
	}
	e.speed = next
	if e.task != nil {
		e.task.Reset(e.speed)
	}
}

func (e *Engine) stopTaskLocked() {
	if e.task != nil {
		e.task.Stop()
		e.task = nil
	}
}

func (e *Engine) gameOverLocked(cause manager.CollisionType) {
	e.state = GameOver
	e.cause = cause
	e.stopTaskLocked()

	var played time.Duration
	if !e.startedAt.IsZero() {
		played = e.clock.Now().Sub(e.startedAt)
	}
	e.stats.Record(manager.GameRecord{
		Score:    e.score,
		Cause:    cause.String(),
		Duration: played,
		EndedAt:  e.clock.Now(),
	})
	e.logger.Info("game over",
		"session", e.session,
		"score", e.score,
		"cause", cause.String(),
		"length", e.snake.Len(),
		"ticks", e.ticks)
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Session:     e.session,
		State:       e.state,
		Snake:       e.snake.Cells(),
		Food:        e.food,
		Velocity:    e.snake.Velocity,
		Score:       e.score,
		HighScore:   e.stats.GetHighScore(),
		Speed:       e.speed,
		Ticks:       e.ticks,
		TurnPending: e.turns.Pending(),
		Cause:       e.cause,
		Grid:        e.cfg.Grid,
	}
}

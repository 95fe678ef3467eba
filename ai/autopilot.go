// Package ai drives the engine with a tabular Q-learning agent for demo play.
package ai

import (
	"log/slog"
	"sync"
	"time"

	"snake-arcade/clock"
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logging"

	"github.com/google/uuid"
)

// Driver is the part of the engine the autopilot plays through
type Driver interface {
	Snapshot() game.Snapshot
	SetDirection(d types.Direction) bool
	Initialize()
}

type Option func(*Autopilot)

func WithClock(c clock.Clock) Option {
	return func(a *Autopilot) { a.clock = c }
}

// WithRestartDelay sets the pause before a new game. Zero disables restarts.
func WithRestartDelay(d time.Duration) Option {
	return func(a *Autopilot) { a.restartDelay = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Autopilot) { a.logger = l }
}

// WithQLearning shares a learner, e.g. to keep training across engines
func WithQLearning(q *QLearning) Option {
	return func(a *Autopilot) { a.q = q }
}

// WithSeed seeds the exploration of the default learner
func WithSeed(seed uint64) Option {
	return func(a *Autopilot) { a.q = NewQLearning(seed) }
}

type step struct {
	state  State
	action Action
	dist   int
}

// Autopilot plays through a Driver. Register it as a game.Listener on the
// same engine and call Start.
type Autopilot struct {
	ID string

	driver       Driver
	q            *QLearning
	clock        clock.Clock
	restartDelay time.Duration
	logger       *slog.Logger

	mu      sync.Mutex
	prev    *step
	ate     bool
	restart clock.Timer
	stopped bool
}

var _ game.Listener = (*Autopilot)(nil)

func NewAutopilot(d Driver, opts ...Option) *Autopilot {
	a := &Autopilot{
		ID:           uuid.New().String(),
		driver:       d,
		restartDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		a.clock = clock.NewReal()
	}
	if a.q == nil {
		a.q = NewQLearning(uint64(time.Now().UnixNano()))
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	return a
}

func (a *Autopilot) QLearning() *QLearning {
	return a.q
}

// Start issues the first move of a fresh game and drops any pending restart
func (a *Autopilot) Start() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if a.restart != nil {
		a.restart.Stop()
		a.restart = nil
	}
	a.prev = nil
	a.ate = false
	a.mu.Unlock()

	snap := a.driver.Snapshot()
	if snap.State == game.NotStarted {
		a.move(snap)
	}
}

// Stop cancels a pending restart. Moves already queued still apply.
func (a *Autopilot) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.restart != nil {
		a.restart.Stop()
		a.restart = nil
	}
}

func (a *Autopilot) OnFoodEaten(game.Snapshot) {
	a.mu.Lock()
	a.ate = true
	a.mu.Unlock()
}

func (a *Autopilot) OnTick(snap game.Snapshot) {
	if snap.State != game.Running {
		return
	}
	a.move(snap)
}

func (a *Autopilot) OnGameOver(snap game.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.prev != nil {
		a.q.Update(a.prev.state, a.prev.action, RewardDeath, Observe(snap), true)
		a.prev = nil
	}
	a.ate = false
	a.q.EndGame()
	a.logger.Debug("autopilot game over",
		"autopilot", a.ID,
		"session", snap.Session,
		"score", snap.Score,
		"cause", snap.Cause.String())

	if a.stopped || a.restartDelay <= 0 {
		return
	}
	a.restart = a.clock.AfterFunc(a.restartDelay, func() {
		a.driver.Initialize()
		a.Start()
	})
}

// move learns from the last step and queues the next direction
func (a *Autopilot) move(snap game.Snapshot) {
	s := Observe(snap)
	dist := distance(snap.Head(), snap.Food, snap.Grid.CellSize)

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if a.prev != nil {
		var reward float64
		switch {
		case a.ate:
			reward = RewardFood
		case dist < a.prev.dist:
			reward = RewardCloser
		case dist > a.prev.dist:
			reward = RewardFarther
		}
		a.q.Update(a.prev.state, a.prev.action, reward, s, false)
	}
	a.ate = false

	action := a.q.GetAction(s)
	a.prev = &step{state: s, action: action, dist: dist}
	a.mu.Unlock()

	a.driver.SetDirection(Apply(s.Heading, action))
}

// Observe builds the agent state from a snapshot
func Observe(snap game.Snapshot) State {
	heading := types.DirectionOf(snap.Velocity)
	if heading == types.None {
		heading = types.Right
	}
	head := snap.Head()
	cs := snap.Grid.CellSize

	s := State{
		FoodDir: [2]int{sign(snap.Food.X - head.X), sign(snap.Food.Y - head.Y)},
		Heading: heading,
	}
	if len(snap.Snake) == 0 {
		return s
	}

	snake := entity.NewSnake(snap.Snake, snap.Velocity)
	cm := manager.NewCollisionManager(snap.Grid)
	for i, d := range []types.Direction{heading.TurnLeft(), heading, heading.TurnRight()} {
		s.Danger[i] = cm.IsDanger(head.Add(d.Velocity(cs)), snake)
	}
	return s
}

// Apply turns a relative action into an absolute direction
func Apply(heading types.Direction, a Action) types.Direction {
	switch a {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

// distance is the Manhattan distance in cells
func distance(a, b types.Cell, cellSize int) int {
	if cellSize <= 0 {
		cellSize = 1
	}
	return (abs(a.X-b.X) + abs(a.Y-b.Y)) / cellSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

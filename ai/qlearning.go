package ai

import (
	"math"
	"sync"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Action is relative to the current heading so a reverse is never chosen
type Action int

const (
	TurnLeft Action = iota
	Forward
	TurnRight

	numActions = 3
)

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "left"
	case Forward:
		return "forward"
	case TurnRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is what the agent sees of the board
type State struct {
	FoodDir [2]int          // sign of food minus head on each axis
	Danger  [3]bool         // fatal cell on the left, ahead, on the right
	Heading types.Direction // so FoodDir can be read relative to it
}

type QTable map[State][numActions]float64

// Reward values for a single step
const (
	RewardCloser  = 0.5
	RewardFarther = -0.3
	RewardFood    = 1.0
	RewardDeath   = -1.0
)

type QLearning struct {
	mu sync.Mutex

	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// GetAction is epsilon-greedy over the table
func (q *QLearning) GetAction(s State) Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(numActions))
	}
	return q.bestActionLocked(s)
}

// BestAction ignores exploration
func (q *QLearning) BestAction(s State) Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.bestActionLocked(s)
}

// bestActionLocked prefers Forward on ties so an untrained agent goes straight
func (q *QLearning) bestActionLocked(s State) Action {
	values := q.QTable[s]
	best := Forward
	bestValue := values[Forward]
	for a := Action(0); a < numActions; a++ {
		if values[a] > bestValue {
			best, bestValue = a, values[a]
		}
	}
	return best
}

// Update applies one Q-learning step. A terminal transition has no future
// value.
func (q *QLearning) Update(s State, a Action, reward float64, next State, terminal bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	maxNext := 0.0
	if !terminal {
		maxNext = math.Inf(-1)
		for _, v := range q.QTable[next] {
			maxNext = math.Max(maxNext, v)
		}
	}

	values := q.QTable[s]
	values[a] += q.LearningRate * (reward + q.Discount*maxNext - values[a])
	q.QTable[s] = values
	q.TotalReward += reward
}

// EndGame counts a finished episode
func (q *QLearning) EndGame() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.GamesPlayed++
}

// Value returns the learned value of a in s
func (q *QLearning) Value(s State, a Action) float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.QTable[s][a]
}

package manager

import "snake-arcade/game/types"

// TurnQueue holds direction intents between ticks.
// It admits at most one intent per tick; later intents are dropped until
// the tick drains the slot.
type TurnQueue struct {
	pending types.Direction
}

// Enqueue records d unless a turn is already pending
func (q *TurnQueue) Enqueue(d types.Direction) bool {
	if q.pending != types.None || d == types.None {
		return false
	}
	q.pending = d
	return true
}

// Dequeue removes and returns the pending intent, if any
func (q *TurnQueue) Dequeue() (types.Direction, bool) {
	d := q.pending
	q.pending = types.None
	return d, d != types.None
}

// Pending reports whether a turn is waiting for the next tick
func (q *TurnQueue) Pending() bool {
	return q.pending != types.None
}

func (q *TurnQueue) Clear() {
	q.pending = types.None
}

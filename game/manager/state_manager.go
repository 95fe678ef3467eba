package manager

import (
	"sync"
	"time"
)

const maxHistory = 50

// GameRecord is one finished game
type GameRecord struct {
	Score    int
	Cause    string
	Duration time.Duration
	EndedAt  time.Time
}

// StateManager keeps per-session results in memory.
// Nothing is written to disk.
type StateManager struct {
	mu           sync.RWMutex
	highScore    int
	gamesPlayed  int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0, maxHistory),
	}
}

// Record stores a finished game and updates the session best
func (sm *StateManager) Record(rec GameRecord) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gamesPlayed
}

// GetScoreHistory returns up to the last 50 games, oldest first
func (sm *StateManager) GetScoreHistory() []GameRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// AverageScore over the retained history
func (sm *StateManager) AverageScore() float64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.scoreHistory {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

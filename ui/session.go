// Package ui holds what the window and terminal hosts share: input routing,
// on-screen messages and the window layout.
package ui

import (
	"fmt"

	"snake-arcade/game"
)

const (
	StartMessage     = "Use Arrow Keys or Tap Controls to Start"
	AutopilotMessage = "Autopilot engaged"
)

// Engine is the part of game.Engine a host drives
type Engine interface {
	Snapshot() game.Snapshot
	Command(cmd string) bool
	Initialize()
}

// Pilot plays instead of the user
type Pilot interface {
	Start()
}

// Session routes host input to the engine, or to nobody while a pilot plays
type Session struct {
	engine Engine
	pilot  Pilot
}

// NewSession wraps e. Pass a nil pilot for human play.
func NewSession(e Engine, pilot Pilot) *Session {
	return &Session{engine: e, pilot: pilot}
}

func (s *Session) Snapshot() game.Snapshot {
	return s.engine.Snapshot()
}

func (s *Session) Autopilot() bool {
	return s.pilot != nil
}

// Input forwards a raw direction command. Ignored under autopilot.
func (s *Session) Input(cmd string) bool {
	if s.pilot != nil {
		return false
	}
	return s.engine.Command(cmd)
}

// Restart begins a new game; the pilot, if any, takes it straight away
func (s *Session) Restart() {
	s.engine.Initialize()
	if s.pilot != nil {
		s.pilot.Start()
	}
}

// Message is the centered banner for the current state, empty while running
func (s *Session) Message(snap game.Snapshot) string {
	switch snap.State {
	case game.NotStarted:
		if s.pilot != nil {
			return AutopilotMessage
		}
		return StartMessage
	case game.GameOver:
		return fmt.Sprintf("Game Over! Final Score: %d", snap.Score)
	default:
		return ""
	}
}

// Status is the score line drawn above the board
func Status(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)
}

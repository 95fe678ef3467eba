package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckHead evaluates the snake after a move has been applied.
// The head is compared against the grid bounds and every other body cell.
func (cm *CollisionManager) CheckHead(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}

	for _, part := range snake.Body[1:] {
		if head == part {
			return SelfCollision
		}
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// IsDanger reports whether moving the head into pos would be fatal.
// The tail cell is excluded since it vacates on a non-growing move.
func (cm *CollisionManager) IsDanger(pos types.Cell, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	body := snake.Body
	if len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

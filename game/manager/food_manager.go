package manager

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// FoodPlacer picks a cell for the next piece of food
type FoodPlacer interface {
	Place(grid types.Grid, occupied func(types.Cell) bool) types.Cell
}

// FoodManager places food uniformly at random, retrying until the
// chosen cell is free. It does not terminate on a completely full grid.
type FoodManager struct {
	rng *rand.Rand
}

func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (fm *FoodManager) Place(grid types.Grid, occupied func(types.Cell) bool) types.Cell {
	for {
		food := grid.CellAt(fm.rng.Intn(grid.Cols()), fm.rng.Intn(grid.Rows()))
		if !occupied(food) {
			return food
		}
	}
}

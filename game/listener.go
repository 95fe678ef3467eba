package game

//go:generate mockgen -destination mock_listener_test.go -package game -write_package_comment=false snake-arcade/game Listener

// Listener observes engine transitions. Calls happen after the engine lock
// is released, so implementations may call back into the Engine.
type Listener interface {
	OnTick(snap Snapshot)
	OnFoodEaten(snap Snapshot)
	OnGameOver(snap Snapshot)
}

package game

// Gameplay tuning. All durations are ticks at Ebiten's 60 updates per
// second; speeds are pixels per update.
const (
	updatesPerSecond = 60

	playerSpeed   = 2.0
	startingLives = 3

	pelletPoints      = 10
	powerPelletPoints = 50

	// Power window opened by a power pellet. Eating another resets it.
	powerWindowTicks = 300

	// Ghost-eat bonus doubles per ghost inside one power window.
	ghostBasePoints = 200
	ghostMaxPoints  = 1600

	// Pause between campaign levels.
	intermissionTicks = 180
)

// collisionRadius is the circle-overlap distance for player/ghost
// contact, a bit under half a cell so brushing past a corner is
// forgiven.
func collisionRadius(cellSize int) float64 {
	return float64(cellSize)/2 - 2
}

package game

import "github.com/carlosperfil/pacman/internal/geom"

// EventType identifies a gameplay occurrence raised during a tick.
type EventType int

const (
	// EventPelletEaten fires when the player eats a normal pellet.
	EventPelletEaten EventType = iota
	// EventPowerPelletEaten fires when the player eats a power pellet.
	EventPowerPelletEaten
	// EventGhostsVulnerable fires once per power pellet, after the
	// eligible ghosts switched state.
	EventGhostsVulnerable
	// EventGhostEaten fires when the player catches a vulnerable ghost.
	EventGhostEaten
	// EventGhostReturned fires when an eaten ghost reaches its home cell.
	EventGhostReturned
	// EventLifeLost fires when a ghost catches the player.
	EventLifeLost
	// EventLevelComplete fires on the tick the last pellet is eaten.
	EventLevelComplete
	// EventGameOver fires on the tick the last life is lost.
	EventGameOver
	// EventVictory fires when the final campaign level is cleared.
	EventVictory
)

func (t EventType) String() string {
	switch t {
	case EventPelletEaten:
		return "pellet_eaten"
	case EventPowerPelletEaten:
		return "power_pellet_eaten"
	case EventGhostsVulnerable:
		return "ghosts_vulnerable"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventGhostReturned:
		return "ghost_returned"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is one gameplay occurrence. The level appends them while
// stepping; the session drains the queue once per tick and fans out to
// collaborators (audio, persistence). Collaborators never mutate game
// state.
type Event struct {
	Type   EventType
	Points int       // score awarded by this event, 0 if none
	Cell   geom.Cell // board cell it happened at, when meaningful
	Ghost  int       // ghost index for ghost events, -1 otherwise
}

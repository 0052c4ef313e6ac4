package game

import (
	"github.com/carlosperfil/pacman/internal/maze"
	"github.com/carlosperfil/pacman/internal/path"
)

// Phase is the top-level state of the app.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseIntermission
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseIntermission:
		return "intermission"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Session runs a campaign over the loaded maps in order, one level at
// a time. Score and lives carry across levels; clearing the last map
// is victory. Each level plays on a clone of its map, so a later
// campaign starts from a full board again.
type Session struct {
	maps      []*maze.Map
	heuristic path.Heuristic
	lives     int // starting lives for a fresh campaign

	phase      Phase
	levelIdx   int
	level      *Level
	carry      int // score banked from earlier levels
	interTicks int
}

func NewSession(maps []*maze.Map, heuristic path.Heuristic, lives int) *Session {
	if len(maps) == 0 {
		panic("game: session needs at least one map")
	}
	return &Session{maps: maps, heuristic: heuristic, lives: lives, phase: PhaseMenu}
}

// Start begins a fresh campaign on the first map.
func (s *Session) Start() {
	s.levelIdx = 0
	s.carry = 0
	s.level = NewLevel(s.maps[0].Clone(), s.heuristic, s.lives)
	s.phase = PhasePlaying
}

// Tick advances the session one fixed step and returns the events the
// tick raised. Menu, pause and end screens do not tick the level.
func (s *Session) Tick() []Event {
	switch s.phase {
	case PhasePlaying:
		s.level.Step()
		events := s.level.DrainEvents()
		switch {
		case s.level.GameOver():
			s.phase = PhaseGameOver
		case s.level.Complete():
			if s.levelIdx == len(s.maps)-1 {
				s.phase = PhaseVictory
				events = append(events, Event{Type: EventVictory, Ghost: -1})
			} else {
				s.phase = PhaseIntermission
				s.interTicks = intermissionTicks
			}
		}
		return events
	case PhaseIntermission:
		s.interTicks--
		if s.interTicks <= 0 {
			s.nextLevel()
		}
		return nil
	default:
		return nil
	}
}

func (s *Session) nextLevel() {
	lives := s.level.Player.Lives
	s.carry += s.level.Score
	s.levelIdx++
	s.level = NewLevel(s.maps[s.levelIdx].Clone(), s.heuristic, lives)
	s.phase = PhasePlaying
}

// Confirm is the menu action: it starts a campaign from the menu and
// leaves an end screen back to the menu.
func (s *Session) Confirm() {
	switch s.phase {
	case PhaseMenu:
		s.Start()
	case PhaseGameOver, PhaseVictory:
		s.phase = PhaseMenu
	}
}

// TogglePause freezes and resumes play. Other phases ignore it.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhasePlaying
	}
}

// Abandon drops a running campaign and returns to the menu.
func (s *Session) Abandon() {
	switch s.phase {
	case PhasePlaying, PhasePaused, PhaseIntermission:
		s.phase = PhaseMenu
	}
}

func (s *Session) Phase() Phase { return s.phase }

// Level returns the running level, nil before the first Start.
func (s *Session) Level() *Level { return s.level }

func (s *Session) LevelIndex() int { return s.levelIdx }
func (s *Session) LevelCount() int { return len(s.maps) }

// CurrentMap returns the map of the running level, or the campaign's
// current map while no level is live.
func (s *Session) CurrentMap() *maze.Map {
	if s.level != nil {
		return s.level.Map
	}
	return s.maps[s.levelIdx]
}

// Score is the campaign total across levels.
func (s *Session) Score() int {
	if s.level == nil {
		return 0
	}
	return s.carry + s.level.Score
}

// Lives reports the player's remaining lives, or the configured start
// value while no campaign runs.
func (s *Session) Lives() int {
	if s.level == nil {
		return s.lives
	}
	return s.level.Player.Lives
}

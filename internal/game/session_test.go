package game

import (
	"testing"

	"github.com/carlosperfil/pacman/internal/entities"
	"github.com/carlosperfil/pacman/internal/maze"
	"github.com/carlosperfil/pacman/internal/path"
)

func twoMapSession(t *testing.T) *Session {
	t.Helper()
	maps := []*maze.Map{onePelletMap(t, "alpha"), onePelletMap(t, "beta")}
	return NewSession(maps, path.HeuristicEuclidean, startingLives)
}

// Drives the running level to completion by walking onto the only
// pellet, returning the events of the completing tick.
func clearLevel(t *testing.T, s *Session) []Event {
	t.Helper()
	for i := 0; i < 50; i++ {
		s.Level().Player.DesiredDir = entities.DirRight
		events := s.Tick()
		if containsEvent(events, EventLevelComplete) {
			return events
		}
	}
	t.Fatal("level did not complete within 50 ticks")
	return nil
}

func TestSessionStartsInMenu(t *testing.T) {
	s := twoMapSession(t)
	if s.Phase() != PhaseMenu {
		t.Fatalf("phase = %v, want menu", s.Phase())
	}
	if s.Level() != nil {
		t.Fatal("no level should exist before the campaign starts")
	}
	if s.Score() != 0 || s.Lives() != startingLives {
		t.Fatalf("idle session reports score %d lives %d", s.Score(), s.Lives())
	}
	if s.Tick() != nil {
		t.Fatal("menu ticks must not produce events")
	}
}

func TestSessionConfirmStartsCampaign(t *testing.T) {
	s := twoMapSession(t)
	s.Confirm()
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase())
	}
	if s.LevelIndex() != 0 || s.Level() == nil {
		t.Fatal("campaign should open on the first map")
	}
	if got := s.CurrentMap().Name; got != "alpha" {
		t.Fatalf("current map %q, want alpha", got)
	}
}

func TestSessionCampaignAcrossLevels(t *testing.T) {
	s := twoMapSession(t)
	s.Confirm()

	clearLevel(t, s)
	if s.Phase() != PhaseIntermission {
		t.Fatalf("phase = %v after first clear, want intermission", s.Phase())
	}
	if s.Score() != pelletPoints {
		t.Fatalf("score = %d after first map, want %d", s.Score(), pelletPoints)
	}

	// The break lasts exactly intermissionTicks
	for i := 0; i < intermissionTicks-1; i++ {
		s.Tick()
		if s.Phase() != PhaseIntermission {
			t.Fatalf("intermission ended early on tick %d", i)
		}
	}
	s.Tick()
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after intermission, want playing", s.Phase())
	}
	if s.LevelIndex() != 1 || s.CurrentMap().Name != "beta" {
		t.Fatalf("expected second map, got index %d map %q", s.LevelIndex(), s.CurrentMap().Name)
	}
	if s.Lives() != startingLives {
		t.Fatalf("lives = %d carried into level 2, want %d", s.Lives(), startingLives)
	}

	events := clearLevel(t, s)
	if !containsEvent(events, EventVictory) {
		t.Fatalf("clearing the last map must raise victory, got %v", eventTypes(events))
	}
	if s.Phase() != PhaseVictory {
		t.Fatalf("phase = %v, want victory", s.Phase())
	}
	if s.Score() != 2*pelletPoints {
		t.Fatalf("campaign score = %d, want %d", s.Score(), 2*pelletPoints)
	}

	s.Confirm()
	if s.Phase() != PhaseMenu {
		t.Fatalf("confirm on victory should return to menu, got %v", s.Phase())
	}
}

func TestSessionRestartGetsFreshPellets(t *testing.T) {
	s := twoMapSession(t)
	s.Confirm()
	clearLevel(t, s)

	// Abandon mid-campaign, then start over
	s.Abandon()
	if s.Phase() != PhaseMenu {
		t.Fatalf("phase = %v after abandon, want menu", s.Phase())
	}
	s.Confirm()
	if got := s.Level().Map.PelletsRemaining(); got != 1 {
		t.Fatalf("restarted level has %d pellets, want 1", got)
	}
	if s.Score() != 0 {
		t.Fatalf("restarted campaign score = %d, want 0", s.Score())
	}
}

func TestSessionPauseFreezesTicks(t *testing.T) {
	s := twoMapSession(t)
	s.Confirm()
	s.Tick()
	tick := s.Level().Tick

	s.TogglePause()
	if s.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", s.Phase())
	}
	for i := 0; i < 10; i++ {
		if ev := s.Tick(); ev != nil {
			t.Fatal("paused ticks must not produce events")
		}
	}
	if s.Level().Tick != tick {
		t.Fatal("pause must freeze the level clock")
	}

	s.TogglePause()
	s.Tick()
	if s.Level().Tick != tick+1 {
		t.Fatal("resume must advance the level clock again")
	}
}

func TestSessionGameOverEndsCampaign(t *testing.T) {
	maps := []*maze.Map{onePelletMap(t, "alpha")}
	s := NewSession(maps, path.HeuristicEuclidean, 1)
	s.Confirm()

	s.Level().Ghosts[0].Pos = s.Level().Player.Pos
	events := s.Tick()
	if !containsEvent(events, EventGameOver) {
		t.Fatalf("expected game over, got %v", eventTypes(events))
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", s.Phase())
	}
	s.Confirm()
	if s.Phase() != PhaseMenu {
		t.Fatalf("confirm on game over should return to menu, got %v", s.Phase())
	}
}

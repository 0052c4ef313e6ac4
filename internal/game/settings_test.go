package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlosperfil/pacman/internal/path"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return p
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("got %+v, want defaults", s)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	p := writeSettings(t, `
heuristic: manhattan
lives: 5
maps_dir: boards
audio:
  muted: true
  music: 0.25
`)
	s, err := LoadSettings(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Heuristic != "manhattan" || s.Lives != 5 || s.MapsDir != "boards" {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if !s.Audio.Muted || s.Audio.Music != 0.25 {
		t.Fatalf("audio overrides not applied: %+v", s.Audio)
	}
	// Fields absent from the file keep their defaults
	if s.Audio.Effect != DefaultSettings().Audio.Effect {
		t.Fatalf("effect volume = %v, want default", s.Audio.Effect)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"heuristic", "heuristic: dijkstra\n"},
		{"lives", "lives: 0\n"},
		{"volume", "audio:\n  ghost: 1.5\n"},
		{"yaml", "lives: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadSettings(writeSettings(t, tc.body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSettingsPathHeuristic(t *testing.T) {
	s := DefaultSettings()
	if s.PathHeuristic() != path.HeuristicEuclidean {
		t.Fatal("default heuristic should be euclidean")
	}
	s.Heuristic = "manhattan"
	if s.PathHeuristic() != path.HeuristicManhattan {
		t.Fatal("manhattan should map to the manhattan heuristic")
	}
}

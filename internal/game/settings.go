package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carlosperfil/pacman/internal/path"
)

// Settings is the player-tunable configuration read from a YAML file.
// A missing file means defaults; a malformed or invalid file is fatal
// at load.
type Settings struct {
	Heuristic string        `yaml:"heuristic"` // "manhattan" or "euclidean"
	Lives     int           `yaml:"lives"`
	MapsDir   string        `yaml:"maps_dir"`
	DataDir   string        `yaml:"data_dir"` // scores and history; empty = user config dir
	Audio     AudioSettings `yaml:"audio"`
}

// AudioSettings holds one volume per sound kind, 0 to 1.
type AudioSettings struct {
	Muted  bool    `yaml:"muted"`
	Effect float64 `yaml:"effect"`
	Music  float64 `yaml:"music"`
	UI     float64 `yaml:"ui"`
	Ghost  float64 `yaml:"ghost"`
}

func DefaultSettings() Settings {
	return Settings{
		Heuristic: "euclidean",
		Lives:     startingLives,
		MapsDir:   "maps",
		Audio: AudioSettings{
			Effect: 1.0,
			Music:  0.8,
			UI:     1.0,
			Ghost:  1.0,
		},
	}
}

// LoadSettings reads the settings file at p. Values absent from the
// file keep their defaults.
func LoadSettings(p string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings %s: %w", p, err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", p, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Heuristic {
	case "manhattan", "euclidean":
	default:
		return fmt.Errorf("unknown heuristic %q", s.Heuristic)
	}
	if s.Lives < 1 {
		return fmt.Errorf("lives %d must be at least 1", s.Lives)
	}
	vols := []struct {
		name string
		v    float64
	}{
		{"effect", s.Audio.Effect},
		{"music", s.Audio.Music},
		{"ui", s.Audio.UI},
		{"ghost", s.Audio.Ghost},
	}
	for _, vol := range vols {
		if vol.v < 0 || vol.v > 1 {
			return fmt.Errorf("audio volume %s=%v out of range 0-1", vol.name, vol.v)
		}
	}
	return nil
}

// PathHeuristic maps the settings value onto the pathfinder enum.
// validate guarantees the value is known.
func (s Settings) PathHeuristic() path.Heuristic {
	if s.Heuristic == "manhattan" {
		return path.HeuristicManhattan
	}
	return path.HeuristicEuclidean
}

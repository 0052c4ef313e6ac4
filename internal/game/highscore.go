package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	configDirName   = "pacman"
	leaderboardFile = "highscores.json"
	leaderboardSize = 10
)

// DataDir resolves the directory scores and history live in: the
// explicit override when set, else PACMAN_CONFIG_DIR, else the user
// config dir. The directory is created.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv("PACMAN_CONFIG_DIR")
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, configDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	When  time.Time `json:"when"`
}

// ScoreStore persists the top scores as a JSON array, written
// atomically through a temp file.
type ScoreStore struct {
	path string
}

func NewScoreStore(dir string) *ScoreStore {
	return &ScoreStore{path: filepath.Join(dir, leaderboardFile)}
}

// Load returns the saved entries sorted best first. A missing file is
// an empty board.
func (s *ScoreStore) Load() ([]ScoreEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	var list []ScoreEntry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	sortEntries(list)
	return list, nil
}

// Qualifies reports whether score would enter the board.
func (s *ScoreStore) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	list, err := s.Load()
	if err != nil || len(list) < leaderboardSize {
		return true
	}
	return score > list[len(list)-1].Score
}

// Best returns the top entry, false on an empty board.
func (s *ScoreStore) Best() (ScoreEntry, bool) {
	list, err := s.Load()
	if err != nil || len(list) == 0 {
		return ScoreEntry{}, false
	}
	return list[0], true
}

// Submit inserts an entry, keeps the best rows up to the board size
// and rewrites the file atomically.
func (s *ScoreStore) Submit(name string, score int) ([]ScoreEntry, error) {
	if score < 0 {
		return nil, errors.New("score must be non-negative")
	}
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	list = append(list, ScoreEntry{
		Name:  strings.TrimSpace(name),
		Score: score,
		When:  time.Now().UTC(),
	})
	sortEntries(list)
	if len(list) > leaderboardSize {
		list = list[:leaderboardSize]
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return nil, fmt.Errorf("write scores: %w", err)
	}
	return list, nil
}

// Stable sort keeps the earlier holder ahead on equal scores.
func sortEntries(list []ScoreEntry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
}

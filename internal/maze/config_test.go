package maze

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const validMapJSON = `{
  "metadata": {"name": "Test", "difficulty": 80, "cell_size": 16, "width": 5, "height": 5},
  "layout": [
    [1,1,1,1,1],
    [1,2,2,3,1],
    [1,2,1,2,1],
    [1,0,2,2,1],
    [1,1,1,1,1]
  ],
  "spawn_positions": {
    "player": {"x": 1, "y": 1},
    "ghost_red": {"x": 3, "y": 1},
    "ghost_pink": {"x": 1, "y": 3},
    "ghost_cyan": {"x": 3, "y": 3},
    "ghost_orange": {"x": 2, "y": 3}
  }
}`

func TestParseValidMap(t *testing.T) {
	m, err := Parse([]byte(validMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "Test" || m.Difficulty != 80 || m.CellSize != 16 {
		t.Fatalf("metadata mismatch: %+v", m)
	}
	if m.Width != 5 || m.Height != 5 {
		t.Fatalf("dimensions = %dx%d, want 5x5", m.Width, m.Height)
	}
	if got := m.PelletsRemaining(); got != 7 {
		t.Fatalf("pellets = %d, want 7", got)
	}
	if !m.IsWall(2, 2) {
		t.Fatal("expected wall at (2,2)")
	}
	if c := m.MustSpawn(SpawnPlayer); c.Col != 1 || c.Row != 1 {
		t.Fatalf("player spawn = %v", c)
	}
}

func TestParseDefaults(t *testing.T) {
	data := `{
	  "layout": [[1,1,1],[1,2,1],[1,1,1]],
	  "spawn_positions": {
	    "player": {"x": 1, "y": 1},
	    "ghost_red": {"x": 1, "y": 1},
	    "ghost_pink": {"x": 1, "y": 1},
	    "ghost_cyan": {"x": 1, "y": 1},
	    "ghost_orange": {"x": 1, "y": 1}
	  }
	}`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Difficulty != DefaultDifficulty {
		t.Fatalf("difficulty = %d, want default %d", m.Difficulty, DefaultDifficulty)
	}
	if m.CellSize != DefaultCellSize {
		t.Fatalf("cell size = %d, want default %d", m.CellSize, DefaultCellSize)
	}
}

func TestParseRejectsBadMaps(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"not json", `{`, "decode map"},
		{"empty layout", `{"layout": [], "spawn_positions": {}}`, "layout is empty"},
		{"ragged layout", `{"layout": [[1,1],[1]], "spawn_positions": {}}`, "row 1"},
		{"unknown tile", `{"layout": [[1,9]], "spawn_positions": {}}`, "unknown value 9"},
		{"width mismatch", `{"metadata": {"width": 4}, "layout": [[1,2]], "spawn_positions": {}}`, "width"},
		{"difficulty range", `{"metadata": {"difficulty": 300}, "layout": [[2,2]], "spawn_positions": {}}`, "difficulty 300"},
		{"no pellets", `{"layout": [[0,0],[1,1]], "spawn_positions": {}}`, "no pellets"},
		{"missing spawn", `{"layout": [[2,2]], "spawn_positions": {"player": {"x":0,"y":0}}}`, "missing spawn"},
		{
			"spawn out of bounds",
			`{"layout": [[2,2]], "spawn_positions": {
			  "player": {"x":9,"y":0}, "ghost_red": {"x":0,"y":0}, "ghost_pink": {"x":0,"y":0},
			  "ghost_cyan": {"x":0,"y":0}, "ghost_orange": {"x":0,"y":0}}}`,
			"out of bounds",
		},
		{
			"spawn in wall",
			`{"layout": [[2,1]], "spawn_positions": {
			  "player": {"x":1,"y":0}, "ghost_red": {"x":0,"y":0}, "ghost_pink": {"x":0,"y":0},
			  "ghost_cyan": {"x":0,"y":0}, "ghost_orange": {"x":0,"y":0}}}`,
			"inside a wall",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			if err == nil {
				t.Fatalf("Parse accepted bad map")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAvailableMapsCampaignOrder(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, difficulty int) {
		data := strings.Replace(validMapJSON, `"difficulty": 80`, `"difficulty": `+strconv.Itoa(difficulty), 1)
		data = strings.Replace(data, `"name": "Test"`, `"name": "`+name+`"`, 1)
		if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("hard", 150)
	write("easy", 10)
	write("mid", 75)

	maps, err := AvailableMaps(dir)
	if err != nil {
		t.Fatalf("AvailableMaps: %v", err)
	}
	if len(maps) != 3 {
		t.Fatalf("loaded %d maps, want 3", len(maps))
	}
	for i, want := range []string{"easy", "mid", "hard"} {
		if maps[i].Name != want {
			t.Fatalf("campaign order[%d] = %q, want %q", i, maps[i].Name, want)
		}
	}
}

func TestAvailableMapsEmptyDir(t *testing.T) {
	if _, err := AvailableMaps(t.TempDir()); err == nil {
		t.Fatal("expected error for empty map dir")
	}
}

func TestAvailableMapsBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := AvailableMaps(dir); err == nil {
		t.Fatal("expected error for broken map file")
	}
}

package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

const sampleLevel = `id: sample
name: Sample
theme: night
time_limit: 120
rows:
  - "....?M....|."
  - "..o.......|."
  - ".S..g..k..|."
  - "####..######"
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if lvl.ID != "sample" || lvl.Name != "Sample" || lvl.Theme != sim.ThemeNight || lvl.TimeLimit != 120 {
		t.Errorf("header = %q %q %v %d", lvl.ID, lvl.Name, lvl.Theme, lvl.TimeLimit)
	}
	if lvl.Grid.Width() != 12 || lvl.Grid.Height() != sim.LevelHeight {
		t.Errorf("grid = %dx%d, expected 12x%d", lvl.Grid.Width(), lvl.Grid.Height(), sim.LevelHeight)
	}

	// Four rows bottom-aligned: the first row lands at LevelHeight-4.
	top := sim.LevelHeight - 4
	tests := []struct {
		name    string
		x, y    int
		tile    sim.Tile
		content sim.Content
	}{
		{"coin block", 4, top, sim.TileQuestion, sim.ContentCoin},
		{"item block", 5, top, sim.TileQuestion, sim.ContentPowerUp},
		{"flag", 10, top + 1, sim.TileFlag, sim.ContentNone},
		{"floor", 0, top + 3, sim.TileGround, sim.ContentNone},
		{"pit", 4, top + 3, sim.TileEmpty, sim.ContentNone},
		{"above the map", 0, 0, sim.TileEmpty, sim.ContentNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lvl.Grid.At(tc.x, tc.y); got != tc.tile {
				t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.tile)
			}
			if got := lvl.Grid.ContentAt(tc.x, tc.y); got != tc.content {
				t.Errorf("ContentAt(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.content)
			}
		})
	}

	if lvl.Spawn != (sim.TilePos{X: 1, Y: top + 2}) {
		t.Errorf("Spawn = %+v", lvl.Spawn)
	}
	if len(lvl.Enemies) != 2 || lvl.Enemies[1].Kind != sim.EnemyKoopa {
		t.Errorf("Enemies = %+v, expected a goomba and a koopa", lvl.Enemies)
	}
	if len(lvl.Pickups) != 1 || lvl.Pickups[0].At != (sim.TilePos{X: 2, Y: top + 1}) {
		t.Errorf("Pickups = %+v, expected one coin", lvl.Pickups)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tall := "id: tall\nrows:\n"
	for i := 0; i <= sim.LevelHeight; i++ {
		tall += "  - \"S\"\n"
	}

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no rows", "id: empty\nrows: []\n", ErrEmptyLevel},
		{"blank rows", "id: blank\nrows: [\"\", \"\"]\n", ErrEmptyLevel},
		{"too tall", tall, ErrLevelTooTall},
		{"no spawn", "id: x\nrows: [\"....\", \"####\"]\n", ErrNoSpawn},
		{"unknown tile", "id: x\nrows: [\".S.Z\", \"####\"]\n", ErrUnknownTile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseYAML() error = %v, expected %v", err, tc.want)
			}
		})
	}

	for _, doc := range []string{
		"id: x\ntheme: space\nrows: [\".S.\", \"###\"]\n",
		"id: x\nrows: [\"SS.\", \"###\"]\n",
		"rows: [unclosed\n",
	} {
		if _, err := ParseYAML([]byte(doc)); err == nil {
			t.Errorf("ParseYAML(%q) succeeded, expected an error", doc)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig := sim.Generate(2, 4, sim.GenOptions{})
	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML(Encode()) error = %v", err)
	}

	if back.ID != orig.ID || back.Theme != orig.Theme || back.TimeLimit != orig.TimeLimit || back.Spawn != orig.Spawn {
		t.Errorf("header changed: %+v vs %+v", back, orig)
	}
	g, h := orig.Grid, back.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != h.At(x, y) {
				t.Fatalf("tile (%d, %d) = %v, expected %v", x, y, h.At(x, y), g.At(x, y))
			}
		}
	}
	if len(back.Enemies) != len(orig.Enemies) || len(back.Pickups) != len(orig.Pickups) {
		t.Errorf("entities = %d/%d, expected %d/%d", len(back.Enemies), len(back.Pickups), len(orig.Enemies), len(orig.Pickups))
	}
}

func TestBundledLevelsArePlayable(t *testing.T) {
	all, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled() error = %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("Bundled() returned %d levels, expected at least 3", len(all))
	}

	for _, lvl := range all {
		t.Run(lvl.ID, func(t *testing.T) {
			hasGoal := false
			for y := 0; y < lvl.Grid.Height(); y++ {
				for x := 0; x < lvl.Grid.Width(); x++ {
					hasGoal = hasGoal || lvl.Grid.IsGoal(x, y)
				}
			}
			if !hasGoal {
				t.Error("level has no goal")
			}
			if !lvl.Grid.IsSolid(lvl.Spawn.X, lvl.Spawn.Y+1) {
				t.Errorf("spawn %+v has no floor", lvl.Spawn)
			}

			s := sim.Start(lvl, sim.DefaultParams(), sim.Carry{Lives: 3})
			for i := 0; i < 30; i++ {
				s.Advance(sim.Input{})
			}
			if s.Status() != sim.StatusPlaying {
				t.Errorf("standing still at spawn ended the level: %v", s.Status())
			}
		})
	}

	if _, err := BundledByID(all[0].ID); err != nil {
		t.Errorf("BundledByID(%q) error = %v", all[0].ID, err)
	}
	if _, err := BundledByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("BundledByID(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.yaml", "id: zeta\nrows: [\".S.\", \"###\"]\n")
	write("nested/a.yml", "rows: [\".S.\", \"###\"]\n")
	write("broken.yaml", "id: broken\nrows: [\"...\"]\n")
	write("notes.txt", "not a level")

	l := Loader{Root: dir}
	all, err := l.LoadAll()
	if !errors.Is(err, ErrNoSpawn) {
		t.Errorf("LoadAll() error = %v, expected the broken file reported", err)
	}
	if len(all) != 2 {
		t.Fatalf("LoadAll() returned %d levels, expected 2", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "zeta" {
		t.Errorf("ids = %q, %q, expected a, zeta", all[0].ID, all[1].ID)
	}

	if lvl, err := l.LoadByID("zeta"); err != nil || lvl.ID != "zeta" {
		t.Errorf("LoadByID(zeta) = %v, %v", lvl, err)
	}
	if _, err := l.LoadByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(nope) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	all, err := Loader{Root: filepath.Join(t.TempDir(), "absent")}.LoadAll()
	if err != nil || len(all) != 0 {
		t.Errorf("LoadAll() = %v, %v, expected nothing", all, err)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	if err := os.WriteFile(path, []byte(sampleLevel), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "other.yaml")

	w, err := NewWatcher(20*time.Millisecond, path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte(sampleLevel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(sampleLevel+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != filepath.Clean(path) {
			t.Errorf("event for %s, expected only %s", name, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change event within 5s")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	for range w.Events {
	}
}

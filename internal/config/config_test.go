package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if want := DefaultPlatformerConfig(); !reflect.DeepEqual(fromYAML, want) {
		t.Errorf("embedded defaults = %+v, expected %+v", fromYAML, want)
	}
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := "physics:\n  gravity: 1.2\nplayer:\n  lives: 9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Physics.Gravity != 1.2 || cfg.Player.Lives != 9 {
		t.Errorf("overrides not applied: gravity %v lives %d", cfg.Physics.Gravity, cfg.Player.Lives)
	}
	def := DefaultPlatformerConfig()
	if cfg.Physics.MaxRun != def.Physics.MaxRun || cfg.Rules.CoinScore != def.Rules.CoinScore {
		t.Error("keys missing from the file lost their defaults")
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "absent.yaml")},
		{"malformed yaml", bad},
		{"invalid values", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadPlatformer(tc.path)
			if err == nil {
				t.Fatal("LoadPlatformer() succeeded, expected an error")
			}
			if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
				t.Error("failed load should still return the defaults")
			}
		})
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		tolerance float64
		enabled   bool
		initial   float64
	}{
		{DifficultyEasy, 7, 10, true, 0.0},
		{DifficultyNormal, 5, 10, true, 0.3},
		{DifficultyHard, 3, 6, true, 0.7},
		{DifficultyFixed, 5, 10, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Player.StompTolerance != tc.tolerance {
				t.Errorf("StompTolerance = %v, expected %v", cfg.Player.StompTolerance, tc.tolerance)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if tc.enabled && cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateReportsProblems(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Physics.MaxRun = 1
	cfg.Player.Lives = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, expected errors for max_run and lives")
	}
}

func TestDifficultyStagesProgression(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty
	cfg.InitialLevel = 0.2
	d := NewDifficultyManager(cfg)

	tests := []struct {
		stages int
		want   float64
	}{
		{0, 0.2},
		{8, 0.6},
		{16, 1.0},
		{40, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.stages); !approx(got, tc.want) {
			t.Errorf("Level(%d) = %v, expected %v", tc.stages, got, tc.want)
		}
	}

	base := 0.07
	if d.GapChance(base, 16) <= d.GapChance(base, 0) {
		t.Error("GapChance() should grow with stages cleared")
	}
	if got := d.EnemyDensity(0.06, 16); !approx(got, 0.12) {
		t.Errorf("EnemyDensity() at max = %v, expected 0.12", got)
	}
	if got := d.Speed(1.0, 16); !approx(got, 1.5) {
		t.Errorf("Speed() at max = %v, expected 1.5", got)
	}

	if !d.Enabled() {
		t.Fatal("Enabled() = false for the default config")
	}
	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.Enabled() {
		t.Error("Enabled() = true with progression switched off")
	}
	if got := d.Level(16); !approx(got, 0.2) {
		t.Errorf("Level() when disabled = %v, expected the initial level", got)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

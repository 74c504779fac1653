package config

import "math"

// Caps keep generated stages mostly floor however far a run gets.
const (
	maxGapChance    = 0.25
	maxEnemyDensity = 0.3
)

// DifficultyManager scales endless-mode stages by how many stages the run
// has cleared. The level goes from InitialLevel to 1.0 over MaxAt stages.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Enabled reports whether the level grows with stages cleared.
func (d *DifficultyManager) Enabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty in [0, 1] after cleared stages.
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.Enabled() {
		return d.cfg.InitialLevel
	}
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := clampF(float64(cleared)/maxAt, 0, 1)
	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Speed scales an enemy speed up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, cleared int) float64 {
	return base * (1 + d.Level(cleared)*d.cfg.Scaling.SpeedMultiplier)
}

// GapChance raises the per-column pit chance.
func (d *DifficultyManager) GapChance(base float64, cleared int) float64 {
	return math.Min(base+d.Level(cleared)*d.cfg.Scaling.GapIncrease, maxGapChance)
}

// EnemyDensity raises the per-column enemy chance.
func (d *DifficultyManager) EnemyDensity(base float64, cleared int) float64 {
	return math.Min(base+d.Level(cleared)*d.cfg.Scaling.EnemyIncrease, maxEnemyDensity)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics    `yaml:"physics"`
	Player     PlatformerPlayer     `yaml:"player"`
	Rules      PlatformerRules      `yaml:"rules"`
	Generation PlatformerGeneration `yaml:"generation"`
	Input      PlatformerInput      `yaml:"input"`
	Camera     PlatformerCamera     `yaml:"camera"`
	Difficulty DifficultyConfig     `yaml:"difficulty"`
}

// PlatformerPhysics defines movement tuning. Velocities are pixels per step.
type PlatformerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFall        float64 `yaml:"max_fall"`
	JumpVelocity   float64 `yaml:"jump_velocity"` // Negative is up
	JumpHoldForce  float64 `yaml:"jump_hold_force"`
	JumpHoldSteps  int     `yaml:"jump_hold_steps"`
	WalkAccel      float64 `yaml:"walk_accel"`
	RunAccel       float64 `yaml:"run_accel"`
	MaxWalk        float64 `yaml:"max_walk"`
	MaxRun         float64 `yaml:"max_run"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
	DeadZone       float64 `yaml:"dead_zone"`
}

// PlatformerPlayer defines player timing windows and starting lives.
type PlatformerPlayer struct {
	Lives           int     `yaml:"lives"`
	CoyoteSteps     int     `yaml:"coyote_steps"`
	BufferSteps     int     `yaml:"buffer_steps"`
	InvincibleSteps int     `yaml:"invincible_steps"`
	StompTolerance  float64 `yaml:"stomp_tolerance"`
	StompBounce     float64 `yaml:"stomp_bounce"`
}

// PlatformerRules defines scoring, timing and entity behavior.
type PlatformerRules struct {
	StepsPerSecond   int     `yaml:"steps_per_second"`
	TimeLimit        int     `yaml:"time_limit"` // Seconds, 0 = no limit
	GoalDwellSteps   int     `yaml:"goal_dwell_steps"`
	StompSteps       int     `yaml:"stomp_steps"`
	CoinScore        int     `yaml:"coin_score"`
	StompScore       int     `yaml:"stomp_score"`
	PowerUpScore     int     `yaml:"power_up_score"`
	KillScore        int     `yaml:"kill_score"`
	BreakScore       int     `yaml:"break_score"`
	TimeBonus        int     `yaml:"time_bonus"`
	CoinsPerLife     int     `yaml:"coins_per_life"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	ItemSpeed        float64 `yaml:"item_speed"`
	ActivateRange    float64 `yaml:"activate_range"`
	FireballSpeed    float64 `yaml:"fireball_speed"`
	FireballBounce   float64 `yaml:"fireball_bounce"`
	FireballCooldown int     `yaml:"fireball_cooldown"`
	MaxFireballs     int     `yaml:"max_fireballs"`
}

// PlatformerGeneration defines base tuning of generated levels.
type PlatformerGeneration struct {
	GapChance    float64 `yaml:"gap_chance"`
	EnemyDensity float64 `yaml:"enemy_density"`
	CoinDensity  float64 `yaml:"coin_density"`
}

// PlatformerInput defines terminal input handling.
type PlatformerInput struct {
	HoldSteps int `yaml:"hold_steps"` // Steps a key stays held after its last key event
}

// PlatformerCamera defines viewport tracking.
type PlatformerCamera struct {
	Lead float64 `yaml:"lead"` // Fraction of the viewport kept left of the player
}

// Validate reports every setting that would make the game unplayable.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.MaxFall > 0, "physics.max_fall must be positive, got %v", p.MaxFall)
	check(p.JumpVelocity < 0, "physics.jump_velocity must be negative, got %v", p.JumpVelocity)
	check(p.MaxWalk > 0, "physics.max_walk must be positive, got %v", p.MaxWalk)
	check(p.MaxRun >= p.MaxWalk, "physics.max_run %v is below max_walk %v", p.MaxRun, p.MaxWalk)
	check(p.GroundFriction > 0 && p.GroundFriction <= 1, "physics.ground_friction must be in (0, 1], got %v", p.GroundFriction)
	check(p.AirFriction > 0 && p.AirFriction <= 1, "physics.air_friction must be in (0, 1], got %v", p.AirFriction)
	check(c.Player.Lives > 0, "player.lives must be positive, got %d", c.Player.Lives)
	check(c.Rules.StepsPerSecond > 0, "rules.steps_per_second must be positive, got %d", c.Rules.StepsPerSecond)
	check(c.Rules.GoalDwellSteps > 0, "rules.goal_dwell_steps must be positive, got %d", c.Rules.GoalDwellSteps)
	check(c.Camera.Lead >= 0 && c.Camera.Lead <= 1, "camera.lead must be in [0, 1], got %v", c.Camera.Lead)
	pt := c.Difficulty.Progression.Type
	check(pt == ProgressionStages || pt == ProgressionNone, "difficulty.progression.type must be %q or %q, got %q", ProgressionStages, ProgressionNone, pt)

	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionStages = "stages"
	ProgressionNone   = "none"
)

// ProgressionConfig defines how difficulty grows during an endless run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stages" or "none"
	MaxAt int    `yaml:"max_at"` // Stages cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	GapIncrease     float64 `yaml:"gap_increase"`     // Added to the pit chance at max difficulty
	EnemyIncrease   float64 `yaml:"enemy_increase"`   // Added to the enemy density at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a preset name. Unknown names yield "" (use config
// default).
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

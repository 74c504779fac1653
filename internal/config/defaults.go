package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:        0.9,
			MaxFall:        12,
			JumpVelocity:   -8.5,
			JumpHoldForce:  0.4,
			JumpHoldSteps:  10,
			WalkAccel:      0.35,
			RunAccel:       0.5,
			MaxWalk:        3.5,
			MaxRun:         5.5,
			GroundFriction: 0.89,
			AirFriction:    0.95,
			DeadZone:       0.1,
		},
		Player: PlatformerPlayer{
			Lives:           5,
			CoyoteSteps:     6,
			BufferSteps:     6,
			InvincibleSteps: 120,
			StompTolerance:  10,
			StompBounce:     -7,
		},
		Rules: PlatformerRules{
			StepsPerSecond:   60,
			TimeLimit:        400,
			GoalDwellSteps:   4,
			StompSteps:       20,
			CoinScore:        200,
			StompScore:       100,
			PowerUpScore:     1000,
			KillScore:        100,
			BreakScore:       50,
			TimeBonus:        10,
			CoinsPerLife:     100,
			EnemySpeed:       1.0,
			ItemSpeed:        2.0,
			ActivateRange:    320,
			FireballSpeed:    6,
			FireballBounce:   -5,
			FireballCooldown: 20,
			MaxFireballs:     2,
		},
		Generation: PlatformerGeneration{
			GapChance:    0.07,
			EnemyDensity: 0.06,
			CoinDensity:  0.05,
		},
		Input: PlatformerInput{
			HoldSteps: 9,
		},
		Camera: PlatformerCamera{
			Lead: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionStages,
				MaxAt: 16,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GapIncrease:     0.08,
				EnemyIncrease:   0.06,
			},
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:     -9.8,
			JumpImpulse: 3.0,
			GroundY:     -0.5,
			Speed:       1.0,
		},
		Player: Player{
			X:      -0.8,
			Width:  0.05,
			Height: 0.1,
		},
		Obstacles: Obstacles{
			Width:    0.05,
			Height:   0.1,
			SpawnX:   1.2,
			DespawnX: -1.2,
		},
		Spawn: Spawn{
			FirstMin:    1.0,
			FirstMax:    2.5,
			MinInterval: 0.5,
			MaxInterval: 2.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 20, // 2.5s - 0.1s per second reaches 0.5s after 20s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

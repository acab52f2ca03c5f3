// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the endless runner.
// Distances are in world units (the visible area spans -1..1 on both axes)
// and times are in seconds.
type RunnerConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Spawn      Spawn            `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines world physics parameters.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Vertical acceleration, negative pulls down
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set on jump
	GroundY     float64 `yaml:"ground_y"`     // Player center y when standing
	Speed       float64 `yaml:"speed"`        // Obstacle scroll speed
}

// Player defines the player sprite.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines obstacle geometry and lifetime.
type Obstacles struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpawnX   float64 `yaml:"spawn_x"`   // Center x for new obstacles
	DespawnX float64 `yaml:"despawn_x"` // Obstacles with center x below this are removed
}

// Spawn defines the obstacle spawn timer.
type Spawn struct {
	FirstMin    float64 `yaml:"first_min"`    // Lower bound of the first spawn delay
	FirstMax    float64 `yaml:"first_max"`    // Upper bound of the first spawn delay
	MinInterval float64 `yaml:"min_interval"` // Lower bound of every later delay
	MaxInterval float64 `yaml:"max_interval"` // Upper bound of later delays at difficulty 0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "score", or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds or points at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty, 0 keeps speed constant
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// An empty string yields an empty preset, meaning "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// ApplyPreset modifies the config based on a difficulty preset.
func (c *RunnerConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		c.Difficulty.Enabled = false
	default:
		c.Difficulty.Enabled = true
		c.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports every setting that would make the game unplayable,
// joined into one error.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity >= 0 {
		errs = append(errs, errors.New("physics.gravity must be negative"))
	}
	if c.Physics.JumpImpulse <= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be positive"))
	}
	if c.Physics.Speed <= 0 {
		errs = append(errs, errors.New("physics.speed must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Obstacles.DespawnX >= c.Obstacles.SpawnX {
		errs = append(errs, errors.New("obstacles.despawn_x must be left of spawn_x"))
	}
	if c.Spawn.FirstMin <= 0 || c.Spawn.FirstMax < c.Spawn.FirstMin {
		errs = append(errs, errors.New("spawn.first_min must be positive and not above first_max"))
	}
	if c.Spawn.MinInterval <= 0 || c.Spawn.MaxInterval < c.Spawn.MinInterval {
		errs = append(errs, errors.New("spawn.min_interval must be positive and not above max_interval"))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, errors.New("difficulty.initial_level must be within [0, 1]"))
	}
	switch c.Difficulty.Progression.Type {
	case "time", "score", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not time, score or none", c.Difficulty.Progression.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid runner config: %w", err)
	}
	return nil
}

package runner

import (
	"math/rand"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

// Obstacle is a block scrolling toward the player.
type Obstacle struct {
	Box    core.Box
	Passed bool // Already counted toward the score
}

// ObstacleManager handles timed spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	timer      float64 // Seconds since the last spawn
	nextSpawn  float64 // Delay before the next spawn
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset(seed)
	return om
}

// UpdateConfig updates the configuration.
func (om *ObstacleManager) UpdateConfig(cfg *config.RunnerConfig, diff *config.DifficultyManager) {
	om.cfg = cfg
	om.difficulty = diff
}

// Reset clears all obstacles, reseeds the RNG and draws the first spawn delay.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
	om.timer = 0
	om.nextSpawn = om.uniform(om.cfg.Spawn.FirstMin, om.cfg.Spawn.FirstMax)
}

// Update advances the spawn timer, scrolls obstacles by dt seconds and drops
// the ones that left the screen. It returns how many obstacles moved fully
// behind the player during this update.
func (om *ObstacleManager) Update(dt float64, player core.Box, score int, elapsed float64) int {
	om.timer += dt
	if om.timer >= om.nextSpawn {
		om.timer = 0
		maxInterval := om.difficulty.MaxInterval(om.cfg.Spawn.MaxInterval, om.cfg.Spawn.MinInterval, score, elapsed)
		om.nextSpawn = om.uniform(om.cfg.Spawn.MinInterval, maxInterval)
		om.spawn()
	}

	dx := om.difficulty.Speed(om.cfg.Physics.Speed, score, elapsed) * dt
	for i := range om.obstacles {
		om.obstacles[i].Box.X -= dx
	}

	cleared := 0
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Box.X < om.cfg.Obstacles.DespawnX {
			continue
		}
		if !o.Passed && o.Box.Right() < player.Left() {
			o.Passed = true
			cleared++
		}
		kept = append(kept, o)
	}
	om.obstacles = kept

	return cleared
}

// spawn appends a new obstacle standing on the ground at the spawn line.
func (om *ObstacleManager) spawn() {
	// Bottom edges line up with a grounded player.
	floor := om.cfg.Physics.GroundY - om.cfg.Player.Height/2
	om.obstacles = append(om.obstacles, Obstacle{
		Box: core.NewBox(
			om.cfg.Obstacles.SpawnX,
			floor+om.cfg.Obstacles.Height/2,
			om.cfg.Obstacles.Width,
			om.cfg.Obstacles.Height,
		),
	})
}

func (om *ObstacleManager) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + om.rng.Float64()*(hi-lo)
}

// Obstacles returns the current obstacles, oldest first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// NextSpawn returns the current spawn delay and the time already waited.
func (om *ObstacleManager) NextSpawn() (delay, waited float64) {
	return om.nextSpawn, om.timer
}

// CheckCollision tests if the given box collides with any obstacle.
func (om *ObstacleManager) CheckCollision(player core.Box) bool {
	for _, o := range om.obstacles {
		if player.Intersects(o.Box) {
			return true
		}
	}
	return false
}

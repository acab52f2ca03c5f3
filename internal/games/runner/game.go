// Package runner implements the endless runner: a block that jumps over
// obstacles scrolling in from the right.
//
// The simulation runs in world space (-1..1 on both axes, y up) with a fixed
// time step derived from the tick rate, so identical seeds and inputs
// always replay identically.
package runner

import (
	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

// ID is the identifier used for score storage.
const ID = "runner"

// Game implements the endless runner logic.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	obstacles  *ObstacleManager
	player     core.Box
	velocityY  float64
	grounded   bool
	jumpQueued bool // Jump pressed, waiting for the player to touch ground
	score      int
	gameOver   bool
	paused     bool
	tickCount  int
	elapsed    float64 // Seconds of unpaused play
}

// New creates a runner using the given configuration.
func New(cfg config.RunnerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.player = core.NewBox(g.cfg.Player.X, g.cfg.Physics.GroundY, g.cfg.Player.Width, g.cfg.Player.Height)
	g.velocityY = 0
	g.grounded = true
	g.jumpQueued = false
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.elapsed = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.obstacles.UpdateConfig(&g.cfg, g.difficulty)
		g.obstacles.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()
	g.tickCount++
	g.elapsed += dt

	if in.Has(core.ActionJump) {
		g.jumpQueued = true
	}
	if g.jumpQueued && g.grounded {
		g.velocityY = g.cfg.Physics.JumpImpulse
		g.jumpQueued = false
		g.grounded = false
	}

	g.velocityY += g.cfg.Physics.Gravity * dt
	g.player.Y += g.velocityY * dt
	if g.player.Y < g.cfg.Physics.GroundY {
		g.player.Y = g.cfg.Physics.GroundY
		g.velocityY = 0
		g.grounded = true
	}

	g.score += g.obstacles.Update(dt, g.player, g.score, g.elapsed)

	if g.obstacles.CheckCollision(g.player) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the world for graphical renderers.
func (g *Game) Snapshot() core.Snapshot {
	obs := g.obstacles.Obstacles()
	boxes := make([]core.Box, len(obs))
	for i, o := range obs {
		boxes[i] = o.Box
	}
	return core.Snapshot{
		Player:    g.player,
		Obstacles: boxes,
		GroundY:   g.groundLine(),
		Grounded:  g.grounded,
		State:     g.State(),
		Elapsed:   g.elapsed,
		Speed:     g.Speed(),
	}
}

// Speed returns the current obstacle speed in world units per second.
func (g *Game) Speed() float64 {
	return g.difficulty.Speed(g.cfg.Physics.Speed, g.score, g.elapsed)
}

// groundLine is the world y of the surface the player stands on.
func (g *Game) groundLine() float64 {
	return g.cfg.Physics.GroundY - g.cfg.Player.Height/2
}

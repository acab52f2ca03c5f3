package core

// Game is the interface the platform layers drive.
// Implementations contain pure logic; the platform handles input mapping,
// timing, and presentation.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into a terminal screen buffer.
	Render(dst *Screen)

	// Snapshot returns the world-space view used by graphical renderers.
	Snapshot() Snapshot

	// State returns the current game state (score, game over, paused).
	State() GameState
}

// Snapshot is a read-only copy of the world at the end of a tick.
type Snapshot struct {
	Player    Box
	Obstacles []Box
	GroundY   float64 // Bottom edge of a grounded player
	Grounded  bool
	State     GameState
	Elapsed   float64 // Seconds of unpaused play
	Speed     float64 // Obstacle scroll speed in world units per second
}

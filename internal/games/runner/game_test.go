package runner

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(seed))
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%40 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (*Game, core.GameState) {
		g := newTestGame(12345)
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, state1 := run()
	g2, state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
	if g1.player != g2.player {
		t.Errorf("Determinism failed: players differ. Run1=%+v, Run2=%+v", g1.player, g2.player)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%30 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if g.State() != (core.GameState{}) {
		t.Errorf("State after reset = %+v, expected zero state", g.State())
	}
	if g.tickCount != 0 || g.elapsed != 0 {
		t.Errorf("Timers not reset: ticks=%d elapsed=%v", g.tickCount, g.elapsed)
	}
	if len(g.obstacles.Obstacles()) != 0 {
		t.Errorf("Obstacles not cleared: %d remain", len(g.obstacles.Obstacles()))
	}
	if !g.grounded || g.player.Y != g.cfg.Physics.GroundY {
		t.Errorf("Player should stand on the ground after reset, got y=%v grounded=%v", g.player.Y, g.grounded)
	}
}

func TestJumpRisesAndLands(t *testing.T) {
	g := newTestGame(1)
	ground := g.cfg.Physics.GroundY

	g.Step(jumpFrame())
	if g.grounded {
		t.Fatal("player should leave the ground after jumping")
	}

	peak := g.player.Y
	landed := false
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if g.player.Y > peak {
			peak = g.player.Y
		}
		if g.player.Y < ground {
			t.Fatalf("player fell below ground: y=%v", g.player.Y)
		}
		if g.grounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	// v²/2g = 9/19.6 ≈ 0.46
	if rise := peak - ground; rise < 0.4 || rise > 0.5 {
		t.Errorf("jump height = %v, expected about 0.46", rise)
	}
}

func TestJumpWhileAirborneIsBuffered(t *testing.T) {
	g := newTestGame(1)

	g.Step(jumpFrame())
	g.Step(core.NewInputFrame())
	g.Step(jumpFrame()) // pressed mid-air
	if !g.jumpQueued {
		t.Fatal("mid-air jump should be queued")
	}

	// Land without pressing again; the queued jump fires on touchdown.
	relaunched := false
	wasGrounded := false
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if g.grounded {
			wasGrounded = true
		} else if wasGrounded && g.velocityY > 0 {
			relaunched = true
			break
		}
	}
	if !relaunched {
		t.Errorf("queued jump did not fire after landing (ever grounded: %v)", wasGrounded)
	}
	if g.jumpQueued {
		t.Error("queued jump should be consumed")
	}
}

func TestFirstObstacleSpawnsWithinWindow(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(seed)

		var spawnedAt float64
		for i := 0; i < 200 && spawnedAt == 0; i++ {
			// Nothing can reach the player before the first spawn.
			g.Step(core.NewInputFrame())
			if len(g.obstacles.Obstacles()) > 0 {
				spawnedAt = g.elapsed
			}
		}

		if spawnedAt < 1.0 || spawnedAt > 2.5+g.runtime.TickSeconds() {
			t.Errorf("seed %d: first obstacle at %.3fs, expected within [1.0, 2.5]", seed, spawnedAt)
		}

		o := g.obstacles.Obstacles()[0].Box
		if math.Abs(o.Y+0.5) > 1e-9 || o.W != 0.05 || o.H != 0.1 {
			t.Errorf("seed %d: obstacle box = %+v, expected 0.05x0.1 centered at y=-0.5", seed, o)
		}
		if o.X > 1.2 || o.X < 1.15 {
			t.Errorf("seed %d: obstacle x = %v, expected just left of 1.2", seed, o.X)
		}
	}
}

func TestStandingStillEndsInCollision(t *testing.T) {
	g := newTestGame(7)

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("an idle player should be hit within 10 seconds")
	}

	// State is frozen after game over
	before := g.Snapshot()
	ticks := g.tickCount
	for i := 0; i < 30; i++ {
		g.Step(jumpFrame())
	}
	after := g.Snapshot()
	if g.tickCount != ticks || after.Player != before.Player || len(after.Obstacles) != len(before.Obstacles) {
		t.Error("game should not advance after game over")
	}
	if g.jumpQueued {
		t.Error("jump after game over should be ignored")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(3)
	for i := 0; i < 150; i++ {
		g.Step(core.NewInputFrame())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	ticks := g.tickCount
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	if g.tickCount != ticks || after.Elapsed != before.Elapsed {
		t.Error("timers should not advance while paused")
	}
	for i := range before.Obstacles {
		if before.Obstacles[i] != after.Obstacles[i] {
			t.Errorf("obstacle %d moved while paused", i)
		}
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

// jumpBot presses jump when the nearest obstacle ahead is close.
func jumpBot(s core.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if !s.Grounded {
		return in
	}
	for _, o := range s.Obstacles {
		gap := o.Left() - s.Player.Right()
		if gap >= 0 && gap < 0.25 {
			in.Set(core.ActionJump)
			break
		}
	}
	return in
}

func TestTimedJumpsClearObstacles(t *testing.T) {
	// Spawns at least one second apart leave room to land between jumps.
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.MinInterval = 1.0
	cfg.Spawn.MaxInterval = 2.0
	cfg.ApplyPreset(config.DifficultyFixed)

	for _, seed := range []int64{1, 2, 3} {
		g := New(cfg)
		g.Reset(testRuntime(seed))

		for i := 0; i < 30*60; i++ {
			g.Step(jumpBot(g.Snapshot()))
			if g.State().GameOver {
				t.Fatalf("seed %d: bot crashed at %.2fs with score %d", seed, g.elapsed, g.State().Score)
			}
		}

		if g.State().Score < 10 {
			t.Errorf("seed %d: score after 30s = %d, expected at least 10 cleared obstacles", seed, g.State().Score)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(5)
	for i := 0; i < 200 && len(g.obstacles.Obstacles()) == 0; i++ {
		g.Step(core.NewInputFrame())
	}

	s := g.Snapshot()
	if len(s.Obstacles) == 0 {
		t.Fatal("expected at least one obstacle")
	}
	s.Obstacles[0].X = 99
	if g.obstacles.Obstacles()[0].Box.X == 99 {
		t.Error("mutating a snapshot must not affect the game")
	}
	if math.Abs(s.GroundY+0.55) > 1e-9 {
		t.Errorf("GroundY = %v, expected -0.55", s.GroundY)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(9)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Score: 0") {
		t.Error("HUD should show the score")
	}

	// Ground row is fully drawn and the player stands right on top of it.
	groundRow := -1
	for y := 0; y < screen.Height(); y++ {
		if strings.Count(screen.Row(y), string(GroundChar)) == screen.Width() {
			groundRow = y
			break
		}
	}
	if groundRow < 0 {
		t.Fatal("ground line not rendered")
	}

	found := false
	for x := 0; x < screen.Width(); x++ {
		c := screen.GetCell(x, groundRow-1)
		if c.Rune == PlayerChar {
			found = true
			if c.Color != core.ColorBlue {
				t.Errorf("live player color = %v, expected blue", c.Color)
			}
		}
	}
	if !found {
		t.Error("player should be drawn on the row above the ground")
	}

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame(1)
	g.Render(core.NewScreen(0, 0)) // must not panic
}

func TestSpeedScaling(t *testing.T) {
	g := newTestGame(3)
	if s := g.Snapshot().Speed; s != 1.0 {
		t.Errorf("default speed = %v, expected 1.0", s)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "Speed:") {
		t.Error("speed HUD should be hidden while speed scaling is off")
	}

	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.InitialLevel = 0.5
	cfg.Difficulty.Scaling.SpeedMultiplier = 1
	g = New(cfg)
	g.Reset(testRuntime(3))

	if s := g.Snapshot().Speed; s != 1.5 {
		t.Errorf("scaled speed at level 0.5 = %v, expected 1.5", s)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "Speed: 1.50") {
		t.Error("speed HUD should show the scaled speed")
	}
}

// Package window runs the game in a desktop window through Ebiten.
//
// Every box is drawn by scaling and offsetting a single white pixel, tinted
// per draw call. Ebiten batches these into very few GPU submissions.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/endless-runner/internal/anim"
	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

// Window defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	deathFade     = 0.35 // Seconds for the player to turn yellow
)

var (
	backgroundColor = color.RGBA{A: 0xff}
	playerColor     = color.RGBA{B: 0xff, A: 0xff}
	deadColor       = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	obstacleColor   = color.RGBA{R: 0xff, A: 0xff}
	groundColor     = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	Player string // Name stored with saved scores
}

// App adapts a core.Game to ebiten.Game.
type App struct {
	game       core.Game
	store      *storage.Store
	logger     *log.Logger
	runtime    core.RuntimeConfig
	opts       Options
	input      core.InputFrame
	state      core.GameState
	scoreSaved bool
	best       int // Stored high score for this game
	pixel      *ebiten.Image
	death      *anim.ColorTween
}

// NewApp creates the window adapter. store may be nil.
func NewApp(game core.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	a := &App{
		game:    game,
		store:   store,
		logger:  logger,
		runtime: cfg,
		opts:    opts,
		input:   core.NewInputFrame(),
		pixel:   pixel,
		death:   anim.NewColorTween(playerColor, deadColor, deathFade, ease.OutQuad),
	}
	a.game.Reset(a.runtime)
	a.state = a.game.State()
	a.loadBest()
	return a
}

// loadBest refreshes the stored high score. Failures are logged, not fatal.
func (a *App) loadBest() {
	if a.store == nil {
		return
	}
	best, err := a.store.HighScore(a.game.ID())
	if err != nil {
		a.logger.Warn("could not read high score", "error", err)
		return
	}
	a.best = best
}

// Update polls the keyboard and advances the simulation by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.input.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.input.Set(core.ActionRestart)
	}

	a.tick()
	return nil
}

// tick runs one simulation step with the collected input.
func (a *App) tick() {
	defer a.input.Clear()

	if a.input.Has(core.ActionRestart) && a.state.GameOver {
		a.runtime.Seed = time.Now().UnixNano()
		a.game.Reset(a.runtime)
		a.state = a.game.State()
		a.scoreSaved = false
		a.death.Reset()
		a.logger.Debug("run restarted", "seed", a.runtime.Seed)
		return
	}

	a.state = a.game.Step(a.input).State

	if a.state.GameOver {
		a.death.Update(float32(a.runtime.TickSeconds()))
		if !a.scoreSaved {
			a.saveScore()
			a.scoreSaved = true
		}
	}
}

// saveScore stores the finished run. Failures are logged, not fatal.
func (a *App) saveScore() {
	a.logger.Info("game over", "score", a.state.Score)
	if a.store == nil || a.state.Score <= 0 {
		return
	}
	if _, err := a.store.SaveScore(a.game.ID(), a.opts.Player, a.state.Score); err != nil {
		a.logger.Warn("could not save score", "error", err)
		return
	}
	a.loadBest()
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := a.game.Snapshot()
	vp := core.NewViewport(a.opts.Width, a.opts.Height)

	groundY := vp.Y(snap.GroundY)
	a.fill(screen, 0, groundY, float64(a.opts.Width), 2, groundColor)

	for _, o := range snap.Obstacles {
		a.drawBox(screen, vp, o, obstacleColor)
	}

	pc := playerColor
	if snap.State.GameOver {
		pc = a.death.Color()
	}
	a.drawBox(screen, vp, snap.Player, pc)

	hud := fmt.Sprintf("Score: %d   Best: %d   Time: %.1fs   Speed: %.2f",
		snap.State.Score, a.best, snap.Elapsed, snap.Speed)
	switch {
	case snap.State.GameOver:
		hud += "\nGAME OVER - press R to restart, Esc to quit"
	case snap.State.Paused:
		hud += "\nPAUSED - press P to resume"
	}
	ebitenutil.DebugPrint(screen, hud)
}

// drawBox draws a world-space box.
func (a *App) drawBox(dst *ebiten.Image, vp core.Viewport, b core.Box, clr color.RGBA) {
	x, y, w, h := vp.Bounds(b)
	a.fill(dst, x, y, w, h, clr)
}

// fill draws a solid rectangle in screen pixels by stretching the white pixel.
func (a *App) fill(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(a.pixel, op)
}

// Layout keeps a fixed logical resolution; Ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.opts.Width, a.opts.Height
}

// Run opens the window and blocks until it is closed.
func Run(game core.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, store, logger, cfg, opts)

	ebiten.SetWindowSize(app.opts.Width, app.opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.runtime.TickRate)

	logger.Info("window opened", "width", app.opts.Width, "height", app.opts.Height, "tps", app.runtime.TickRate)

	err := ebiten.RunGame(app)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

package runner

import (
	"fmt"

	"github.com/vovakirdan/endless-runner/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := core.NewViewport(dst.Width(), dst.Height())

	// Ground sits on the row just below a standing player.
	standing := core.NewBox(g.player.X, g.cfg.Physics.GroundY, g.player.W, g.player.H)
	groundRow := vp.Cells(standing).Bottom()
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.obstacles.Obstacles() {
		dst.DrawRect(g.cellsOnScreen(vp, o.Box, groundRow), ObstacleChar, core.ColorRed)
	}

	playerColor := core.ColorBlue
	if g.gameOver {
		playerColor = core.ColorYellow
	}
	dst.DrawRect(g.cellsOnScreen(vp, g.player, groundRow), PlayerChar, playerColor)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.difficulty.IsEnabled() {
		levelText := fmt.Sprintf(" Lvl: %.0f%% ", 100*g.difficulty.Level(g.score, g.elapsed))
		dst.DrawText(core.Clamp(dst.Width()-len(levelText)-2, 0, dst.Width()), 0, levelText)
	}
	if g.cfg.Difficulty.Scaling.SpeedMultiplier != 0 {
		speedText := fmt.Sprintf(" Speed: %.2f ", g.Speed())
		dst.DrawText(core.Clamp(dst.Width()-len(speedText)-2, 0, dst.Width()), 1, speedText)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// cellsOnScreen projects a box and keeps it above the ground line so rounding
// never sinks sprites into the ground.
func (g *Game) cellsOnScreen(vp core.Viewport, b core.Box, groundRow int) core.Rect {
	r := vp.Cells(b)
	if over := r.Bottom() - groundRow; over > 0 {
		r.Y -= over
	}
	return r
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

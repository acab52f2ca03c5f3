// Package anim holds small time-based animations for the graphical renderer.
package anim

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTween blends from one color to another over a fixed duration.
// Call Update(dt) once per frame and read Color afterwards.
type ColorTween struct {
	tween    *gween.Tween
	from, to color.RGBA
	mix      float32
	Done     bool
}

// NewColorTween creates a tween from one color to another lasting duration
// seconds, shaped by fn.
func NewColorTween(from, to color.RGBA, duration float32, fn ease.TweenFunc) *ColorTween {
	return &ColorTween{
		tween: gween.New(0, 1, duration, fn),
		from:  from,
		to:    to,
	}
}

// Update advances the tween by dt seconds.
func (c *ColorTween) Update(dt float32) {
	if c.Done {
		return
	}
	c.mix, c.Done = c.tween.Update(dt)
}

// Color returns the current blended color.
func (c *ColorTween) Color() color.RGBA {
	return Lerp(c.from, c.to, c.mix)
}

// Reset rewinds the tween to its starting color.
func (c *ColorTween) Reset() {
	c.tween.Reset()
	c.mix = 0
	c.Done = false
}

// Lerp linearly interpolates between two colors; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

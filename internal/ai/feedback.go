// internal/ai/feedback.go
package ai

import (
	"image/color"

	"go-tank-arena/internal/timer"
	"go-tank-arena/pkg/render"
)

// DamageFeedback flashes a tank toward the hurt color after a hit.
type DamageFeedback struct {
	Neutral color.RGBA
	Hurt    color.RGBA
}

// Tint advances the hurt timer by one frame and returns the color for the
// body and turret sprites.
func (f DamageFeedback) Tint(hurt *timer.Timer) color.RGBA {
	if hurt.Check(false) {
		return f.Neutral
	}
	return HurtTint(hurt.Elapsed(), hurt.Delay(), f.Neutral, f.Hurt)
}

// HurtTint ramps from neutral to hurt over the first half of duration and
// back to neutral over the second half.
func HurtTint(elapsed, duration float64, neutral, hurt color.RGBA) color.RGBA {
	half := duration / 2
	if half <= 0 {
		return neutral
	}
	t := elapsed / half
	if t < 1 {
		return render.LerpColor(neutral, hurt, t)
	}
	return render.LerpColor(hurt, neutral, t-1)
}

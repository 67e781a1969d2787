// internal/ui/enemy_health.go
package ui

import (
	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EnemyHealth is the bar floating above an enemy tank. The fill jumps to the
// new value on a hit; a trail behind it drains down over time.
type EnemyHealth struct {
	X, Y          float64 // center of the bar
	Width, Height float64

	health float64
	trail  float64
}

func NewEnemyHealth(x, y, width, height float64) *EnemyHealth {
	return &EnemyHealth{X: x, Y: y, Width: width, Height: height, health: 1, trail: 1}
}

// Update lets the trail catch up with the current health.
func (h *EnemyHealth) Update(deltaTime float64) {
	if h.trail <= h.health {
		h.trail = h.health
		return
	}
	h.trail -= config.HealthBarDrainRate * deltaTime
	if h.trail < h.health {
		h.trail = h.health
	}
}

func (h *EnemyHealth) SetPosition(x, y float64) {
	h.X, h.Y = x, y
}

// SetHealth sets the fill fraction, clamped to [0, 1].
func (h *EnemyHealth) SetHealth(fraction float64) {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	h.health = fraction
	if h.trail < fraction {
		h.trail = fraction
	}
}

func (h *EnemyHealth) Health() float64 { return h.health }

// Trail is the drained-so-far value drawn behind the fill.
func (h *EnemyHealth) Trail() float64 { return h.trail }

func (h *EnemyHealth) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	x := float32(h.X - h.Width/2)
	y := float32(h.Y - h.Height/2)
	w, hh := float32(h.Width), float32(h.Height)

	vector.DrawFilledRect(screen, x, y, w, hh, config.HealthBarBack, false)
	if h.trail > 0 {
		vector.DrawFilledRect(screen, x, y, w*float32(h.trail), hh, config.HealthBarTrail, false)
	}
	if h.health > 0 {
		vector.DrawFilledRect(screen, x, y, w*float32(h.health), hh, config.HealthBarFill, false)
	}
	vector.StrokeRect(screen, x, y, w, hh, 1, config.HealthBarFrame, false)
}

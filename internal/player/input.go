// internal/player/input.go
package player

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Input is the player's intent for one frame. Axes are in [-1, 1].
type Input interface {
	Throttle() float64   // +1 forward, -1 reverse
	Steer() float64      // -1 turns left, +1 turns right
	TurretTurn() float64 // same convention as Steer
	Fire() bool
}

// Keyboard reads W/S throttle, A/D steering, Q/E or arrow keys for the
// turret and Space to fire.
type Keyboard struct{}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

func (Keyboard) Throttle() float64 {
	return axis(ebiten.IsKeyPressed(ebiten.KeyS), ebiten.IsKeyPressed(ebiten.KeyW))
}

func (Keyboard) Steer() float64 {
	return axis(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD))
}

func (Keyboard) TurretTurn() float64 {
	left := ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	return axis(left, right)
}

func (Keyboard) Fire() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

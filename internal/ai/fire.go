// internal/ai/fire.go
package ai

import (
	"go-tank-arena/internal/projectile"
	"go-tank-arena/internal/timer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// FireControl spawns bullets when the turret is on target and the attack
// delay has run out, and keeps the bullets it fired moving.
type FireControl struct {
	Attack   *timer.Timer
	Bullets  *projectile.List
	Image    *ebiten.Image
	Speed    float64
	Damage   int
	Lifetime float64
}

// Update fires at most one bullet from muzzle along heading, then advances
// all active bullets and tests them against targets. It returns the bullet
// fired this frame, if any.
func (f *FireControl) Update(canFire bool, muzzle cp.Vector, heading, deltaTime float64, targets ...projectile.Target) *projectile.Bullet {
	var fired *projectile.Bullet
	// The attack delay runs every frame, aimed or not.
	ready := f.Attack.Check(false)
	if canFire && ready {
		fired = projectile.NewBullet(f.Image, f.Speed, muzzle, heading, f.Damage, f.Bullets)
		if f.Lifetime > 0 {
			fired.Lifetime = f.Lifetime
		}
		f.Bullets.Add(fired)
		f.Attack.Reset()
	}
	f.Bullets.Update(deltaTime, targets...)
	return fired
}

// Muzzle is the turret tip: half the turret length out from the pivot.
func Muzzle(pivot, turretForward cp.Vector, turretLength float64) cp.Vector {
	return pivot.Add(turretForward.Normalize().Mult(turretLength / 2))
}

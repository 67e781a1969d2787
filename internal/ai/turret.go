// internal/ai/turret.go
package ai

import (
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// TurretControl aims the turret and decides whether a shot would land.
type TurretControl struct {
	RotationSpeed float64 // radians per second
	FireCone      float64 // max aim error for canFire, radians
	DeadZone      float64
}

type AimDecision struct {
	InRange  bool
	CanFire  bool
	Angle    float64 // signed aim error
	Rotation float64 // turret delta for this frame
}

// Aim tracks target while it is inside bounds.MaxRadius. Out of range the
// turret holds still and firing is disabled, as it is when the target sits
// exactly on the turret pivot. The turret step is not clamped
// to the aim error, so it may swing past the target by one frame's turn.
func (c TurretControl) Aim(position, target, turretForward cp.Vector, bounds component.Bounds, deltaTime float64) AimDecision {
	var d AimDecision
	dist := position.Distance(target)
	d.InRange = bounds.InRange(dist)
	if !d.InRange || dist == 0 {
		return d
	}

	desired := target.Sub(position)
	d.Angle = utils.AngleBetween(desired.X, desired.Y, turretForward.X, turretForward.Y)
	abs := math.Abs(d.Angle)
	d.CanFire = abs < c.FireCone
	if abs > c.DeadZone {
		d.Rotation = utils.Sign(d.Angle) * c.RotationSpeed * deltaTime
	}
	return d
}

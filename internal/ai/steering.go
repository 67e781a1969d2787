// internal/ai/steering.go
package ai

import (
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// Steering holds the body movement parameters of an AI tank.
type Steering struct {
	Speed         float64 // units per second
	RotationSpeed float64 // radians per second
	DeadZone      float64 // radians
	ApproachCone  float64 // max heading error for driving forward
	ReverseCone   float64 // min heading error for driving in reverse
}

// SteerDecision is the outcome of one steering pass. Rotation and
// Translation are the deltas to apply to the body this frame.
type SteerDecision struct {
	Direction    cp.Vector
	ForwardAngle float64
	LeftAngle    float64
	MoveForward  bool
	RotateLeft   bool
	ShouldMove   bool
	ShouldRotate bool
	Rotation     float64
	Translation  cp.Vector
}

// Steer decides how the body should turn and move to hold the ideal ring
// around target. forward is the body's unit facing. Nothing happens when the
// tank already sits on the ring or on top of its target.
func (s Steering) Steer(position, target, forward cp.Vector, bounds component.Bounds, deltaTime float64) SteerDecision {
	var d SteerDecision

	dist := position.Distance(target)
	switch {
	case dist > bounds.MinRadius:
		d.Direction = target.Sub(position)
	case dist < bounds.MinRadius:
		d.Direction = position.Sub(target)
	}
	if d.Direction.Length() == 0 {
		return d
	}
	d.Direction = d.Direction.Normalize()

	// Screen y points down, so the left of forward is its reverse perpendicular.
	left := forward.ReversePerp()
	d.ForwardAngle = utils.AngleBetween(d.Direction.X, d.Direction.Y, forward.X, forward.Y)
	d.LeftAngle = utils.AngleBetween(d.Direction.X, d.Direction.Y, left.X, left.Y)

	absForward := math.Abs(d.ForwardAngle)
	d.MoveForward = absForward < math.Pi/2
	d.RotateLeft = (math.Abs(d.LeftAngle) < math.Pi/2) == d.MoveForward
	d.ShouldMove = (d.MoveForward && absForward < s.ApproachCone) ||
		(!d.MoveForward && absForward > s.ReverseCone)
	d.ShouldRotate = absForward > s.DeadZone

	facing := forward
	if d.ShouldRotate {
		// Remaining error to whichever end of the hull leads.
		alignErr := absForward
		if !d.MoveForward {
			alignErr = math.Pi - absForward
		}
		step := math.Min(s.RotationSpeed*deltaTime, alignErr)
		if d.RotateLeft {
			step = -step
		}
		d.Rotation = step
		facing = forward.Rotate(cp.ForAngle(step))
	}

	if d.ShouldMove {
		step := math.Min(s.Speed*deltaTime, math.Abs(dist-bounds.MinRadius))
		if !d.MoveForward {
			step = -step
		}
		d.Translation = facing.Mult(step)
	}
	return d
}

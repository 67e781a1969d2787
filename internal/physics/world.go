// Package physics keeps tank colliders in a Chipmunk space so projectiles can
// be tested against rotated hulls.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// World owns the collision space. Tanks never collide with each other here;
// the space is only used as a shape index for queries.
type World struct {
	space *cp.Space
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &World{space: space}
}

// Space exposes the underlying Chipmunk space, e.g. for debug drawing.
func (w *World) Space() *cp.Space {
	return w.space
}

// Step advances the space; kinematic bodies have no velocity so this only
// refreshes cached shape bounds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// NewBoxCollider adds a rotating box of the given size centered on position.
// Length runs along the body's local x axis.
func (w *World) NewBoxCollider(position cp.Vector, rotation, length, width float64) *BoxCollider {
	body := cp.NewKinematicBody()
	body.SetPosition(position)
	body.SetAngle(rotation)

	shape := cp.NewBox(body, length, width, 0)
	shape.SetSensor(true)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	c := &BoxCollider{world: w, body: body, shape: shape, length: length, width: width}
	c.reindex()
	return c
}

// BoxCollider is a kinematic box that follows its tank.
type BoxCollider struct {
	world  *World
	body   *cp.Body
	shape  *cp.Shape
	length float64
	width  float64
}

func (c *BoxCollider) Position() cp.Vector {
	return c.body.Position()
}

func (c *BoxCollider) Angle() float64 {
	return c.body.Angle()
}

func (c *BoxCollider) SetPosition(p cp.Vector) {
	if c.shape == nil {
		return
	}
	c.body.SetPosition(p)
	c.reindex()
}

// Rotate turns the box about its center.
func (c *BoxCollider) Rotate(radians float64) {
	if c.shape == nil {
		return
	}
	c.body.SetAngle(c.body.Angle() + radians)
	c.reindex()
}

// TopLeftPoint is the world position of the box corner at local (-length/2, -width/2).
func (c *BoxCollider) TopLeftPoint() cp.Vector {
	local := cp.Vector{X: -c.length / 2, Y: -c.width / 2}
	return c.body.LocalToWorld(local)
}

// HalfDiagonal is the distance from the center to any corner.
func (c *BoxCollider) HalfDiagonal() float64 {
	return math.Hypot(c.length/2, c.width/2)
}

// Overlaps reports whether a circle of radius r at p touches the box.
func (c *BoxCollider) Overlaps(p cp.Vector, r float64) bool {
	if c.shape == nil {
		return false
	}
	info := c.shape.PointQuery(p)
	return info.Distance <= r
}

// Remove takes the collider out of the world. Further queries report no overlap.
func (c *BoxCollider) Remove() {
	if c.shape == nil {
		return
	}
	c.world.space.RemoveShape(c.shape)
	c.world.space.RemoveBody(c.body)
	c.shape = nil
}

// Removed reports whether Remove has been called.
func (c *BoxCollider) Removed() bool {
	return c.shape == nil
}

// reindex refreshes the cached hull so queries see the pose set this frame
// rather than the one from the last Step.
func (c *BoxCollider) reindex() {
	c.shape.CacheBB()
}

// Package scene is a small matrix hierarchy: every Object has a local rigid
// transform relative to its parent and a cached global transform.
package scene

import (
	"github.com/jakecoffman/cp"
)

var (
	unitX = cp.Vector{X: 1}
	zero  = cp.Vector{}
)

// Object is a node in the scene graph. Position and rotation are kept as
// scalars and the matrices rebuilt from them, so repeated rotations do not
// accumulate drift.
type Object struct {
	parent   *Object
	children []*Object

	position cp.Vector
	rotation float64

	local  cp.Transform
	global cp.Transform
}

// NewObject creates a root object at position with the given rotation (radians).
func NewObject(position cp.Vector, rotation float64) *Object {
	o := &Object{position: position, rotation: rotation}
	o.UpdateTransform()
	return o
}

// AddChild attaches child; the child's transform becomes relative to o.
func (o *Object) AddChild(child *Object) {
	if child == nil || child == o {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = o
	o.children = append(o.children, child)
	child.UpdateTransform()
}

// RemoveChild detaches child, leaving it at its local transform.
func (o *Object) RemoveChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			child.UpdateTransform()
			return
		}
	}
}

func (o *Object) Parent() *Object { return o.parent }

func (o *Object) Children() []*Object { return o.children }

// SetPosition moves the object, in parent space.
func (o *Object) SetPosition(p cp.Vector) {
	o.position = p
	o.UpdateTransform()
}

// Translate offsets the object along parent-space axes.
func (o *Object) Translate(x, y float64) {
	o.position = o.position.Add(cp.Vector{X: x, Y: y})
	o.UpdateTransform()
}

// SetRotate sets the local rotation in radians.
func (o *Object) SetRotate(radians float64) {
	o.rotation = radians
	o.UpdateTransform()
}

// Rotate turns the object about its own origin.
func (o *Object) Rotate(radians float64) {
	o.rotation += radians
	o.UpdateTransform()
}

// UpdateTransform rebuilds the local and global matrices and propagates to children.
func (o *Object) UpdateTransform() {
	o.local = cp.NewTransformRigid(o.position, o.rotation)
	if o.parent != nil {
		o.global = o.parent.global.Mult(o.local)
	} else {
		o.global = o.local
	}
	for _, c := range o.children {
		c.UpdateTransform()
	}
}

func (o *Object) LocalTransform() cp.Transform { return o.local }

func (o *Object) GlobalTransform() cp.Transform { return o.global }

// LocalPosition is the position relative to the parent.
func (o *Object) LocalPosition() cp.Vector { return o.position }

// LocalRotation is the rotation relative to the parent.
func (o *Object) LocalRotation() float64 { return o.rotation }

// Position is the world position (translation column of the global matrix).
func (o *Object) Position() cp.Vector { return o.global.Point(zero) }

// LocalForward is the first column of the local matrix: the unit x axis in parent space.
func (o *Object) LocalForward() cp.Vector { return o.local.Vect(unitX) }

// Forward is the first column of the global matrix: the unit x axis in world space.
func (o *Object) Forward() cp.Vector { return o.global.Vect(unitX) }

// Heading is the world angle of Forward, in (-π, π].
func (o *Object) Heading() float64 { return o.Forward().ToAngle() }

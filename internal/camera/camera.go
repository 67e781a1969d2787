// Package camera keeps the player centered by shifting the world instead of
// moving a view matrix.
package camera

import "github.com/jakecoffman/cp"

// Camera pairs the fixed screen reference with the live center of the frame.
type Camera struct {
	reference cp.Vector
	center    cp.Vector
}

// New returns a camera whose reference and center both start at reference.
func New(reference cp.Vector) *Camera {
	return &Camera{reference: reference, center: reference}
}

// Follow records where the followed entity ended up this frame.
func (c *Camera) Follow(p cp.Vector) {
	c.center = p
}

func (c *Camera) Reference() cp.Vector { return c.reference }

func (c *Camera) Center() cp.Vector { return c.center }

// Offset is the world shift that brings Center back onto Reference.
func (c *Camera) Offset() cp.Vector {
	return c.reference.Sub(c.center)
}

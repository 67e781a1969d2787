package ai

import (
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/utils"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func testTurret() TurretControl {
	return TurretControl{
		RotationSpeed: utils.DegToRad(30),
		FireCone:      utils.DegToRad(5),
		DeadZone:      0.005,
	}
}

func TestAimOutOfRange(t *testing.T) {
	bounds := component.NewBounds(50, 300)
	// badly aimed and far away: no tracking, no fire
	target := cp.ForAngle(utils.DegToRad(90)).Mult(500)
	d := testTurret().Aim(cp.Vector{}, target, cp.Vector{X: 1}, bounds, 0.1)
	assert.False(t, d.InRange)
	assert.False(t, d.CanFire)
	assert.Equal(t, 0.0, d.Rotation)

	// perfectly aimed but just past max range
	d = testTurret().Aim(cp.Vector{}, cp.Vector{X: 300.5}, cp.Vector{X: 1}, bounds, 0.1)
	assert.False(t, d.CanFire)
}

func TestAimCanFire(t *testing.T) {
	bounds := component.NewBounds(50, 300)
	cases := []struct {
		name  string
		dist  float64
		angle float64
		want  bool
	}{
		{"on_target", 200, 0, true},
		{"inside_cone", 200, 2, true},
		{"inside_cone_negative", 200, -4.9, true},
		{"outside_cone", 200, 5.1, false},
		{"perpendicular", 200, 90, false},
		{"just_inside_max_range", 299.9, 1, true},
		{"beyond_max_range", 301, 1, false},
		{"closer_than_ideal", 20, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := cp.ForAngle(utils.DegToRad(c.angle)).Mult(c.dist)
			d := testTurret().Aim(cp.Vector{}, target, cp.Vector{X: 1}, bounds, 0.016)
			assert.Equal(t, c.want, d.CanFire)
		})
	}
}

func TestAimRotation(t *testing.T) {
	bounds := component.NewBounds(50, 300)
	dt := 0.1
	step := utils.DegToRad(30) * dt

	cases := []struct {
		name  string
		angle float64 // radians
		want  float64
	}{
		{"clockwise", utils.DegToRad(2), step},
		{"counter_clockwise", utils.DegToRad(-40), -step},
		// not clamped: a 0.01 rad error still gets the full step
		{"overshoots_small_error", 0.01, step},
		{"dead_zone", 0.001, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := cp.ForAngle(c.angle).Mult(200)
			d := testTurret().Aim(cp.Vector{}, target, cp.Vector{X: 1}, bounds, dt)
			assert.InDelta(t, c.want, d.Rotation, 1e-12)
		})
	}
}

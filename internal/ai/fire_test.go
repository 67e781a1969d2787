package ai

import (
	"math"
	"testing"

	"go-tank-arena/internal/projectile"
	"go-tank-arena/internal/timer"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyTarget struct {
	center cp.Vector
	radius float64
	hits   int
}

func (d *dummyTarget) Position() cp.Vector { return d.center }

func (d *dummyTarget) Overlaps(p cp.Vector, r float64) bool {
	return p.Distance(d.center) <= d.radius+r
}

func (d *dummyTarget) TakeDamage() { d.hits++ }

func newTestFireControl(clock timer.Clock) *FireControl {
	return &FireControl{
		Attack:  timer.New(1.5, clock),
		Bullets: &projectile.List{},
		Speed:   800,
		Damage:  2,
	}
}

func TestFireControlSpawnsOneBullet(t *testing.T) {
	clock := &timer.FrameClock{}
	f := newTestFireControl(clock)
	far := &dummyTarget{center: cp.Vector{X: -1000}, radius: 10}

	clock.Tick(1.5)
	heading := 0.3
	muzzle := cp.Vector{X: 12, Y: 4}
	fired := f.Update(true, muzzle, heading, 0, far)
	require.NotNil(t, fired)
	assert.Equal(t, 1, f.Bullets.Len())
	assert.Equal(t, 800.0, fired.Speed)
	assert.Equal(t, 2, fired.Damage)
	assert.InDelta(t, heading, fired.Heading, 1e-12)
	assert.Equal(t, muzzle, fired.Position())

	// the delay restarts after every shot
	clock.Tick(0.1)
	assert.Nil(t, f.Update(true, muzzle, heading, 0.1, far))
	assert.Equal(t, 1, f.Bullets.Len())
}

func TestFireControlHoldsWithoutAim(t *testing.T) {
	clock := &timer.FrameClock{}
	f := newTestFireControl(clock)

	clock.Tick(2)
	assert.Nil(t, f.Update(false, cp.Vector{}, 0, 0.016))
	assert.Equal(t, 0, f.Bullets.Len())
	assert.Equal(t, 1.5, f.Attack.Elapsed(), "the delay keeps running while not aimed")

	// a ready timer fires on the first aimed frame
	clock.Tick(0)
	assert.NotNil(t, f.Update(true, cp.Vector{}, 0, 0))
}

func TestFireControlHitsTarget(t *testing.T) {
	clock := &timer.FrameClock{}
	f := newTestFireControl(clock)
	target := &dummyTarget{center: cp.Vector{X: 85}, radius: 10}

	clock.Tick(1.5)
	require.NotNil(t, f.Update(true, cp.Vector{}, 0, 0.1, target))
	assert.Equal(t, 2, target.hits, "one hit per point of damage")
	assert.Equal(t, 0, f.Bullets.Len())
}

func TestMuzzle(t *testing.T) {
	m := Muzzle(cp.Vector{X: 10, Y: 10}, cp.ForAngle(math.Pi/2), 30)
	assert.InDelta(t, 10, m.X, 1e-9)
	assert.InDelta(t, 25, m.Y, 1e-9)
}

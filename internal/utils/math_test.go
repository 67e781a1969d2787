package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1, 1},
		{"just_over_pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"negative_wrap", -math.Pi - 0.25, math.Pi - 0.25},
		{"several_turns", 5*math.Pi + 0.1, -math.Pi + 0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, NormalizeAngle(c.in), 1e-9)
		})
	}
}

func TestPositiveAngle(t *testing.T) {
	assert.InDelta(t, 3*math.Pi/2, PositiveAngle(-math.Pi/2), 1e-9)
	assert.InDelta(t, 0.25, PositiveAngle(2*math.Pi+0.25), 1e-9)
}

func TestAngleBetween(t *testing.T) {
	// from +x to +y is a quarter turn
	assert.InDelta(t, math.Pi/2, AngleBetween(0, 1, 1, 0), 1e-9)
	// crossing the ±π seam takes the short way round
	got := AngleBetween(math.Cos(3.0), math.Sin(3.0), math.Cos(-3.0), math.Sin(-3.0))
	assert.InDelta(t, 6.0-2*math.Pi, got, 1e-9)
}

func TestDegreesRoundTrip(t *testing.T) {
	assert.InDelta(t, 180, RadToDeg(math.Pi), 1e-9)
	assert.InDelta(t, 37.5, RadToDeg(DegToRad(37.5)), 1e-9)
}

func TestClampMagnitude(t *testing.T) {
	assert.Equal(t, 2.0, ClampMagnitude(5, 2))
	assert.Equal(t, -2.0, ClampMagnitude(-5, 2))
	assert.Equal(t, 1.5, ClampMagnitude(1.5, 2))
}

type weightedEntry int

func (w weightedEntry) DrawWeight() int { return int(w) }

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(42)

	assert.Equal(t, -1, ChooseWeighted(s, []weightedEntry{}))
	assert.Equal(t, 0, ChooseWeighted(s, []weightedEntry{0, 0}))

	for i := 0; i < 50; i++ {
		assert.Equal(t, 1, ChooseWeighted(s, []weightedEntry{0, 3, -1}))
	}
}

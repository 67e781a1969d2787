package ui

import (
	"testing"

	"go-tank-arena/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestEnemyHealthTrailDrains(t *testing.T) {
	h := NewEnemyHealth(0, 0, config.HealthBarWidth, config.HealthBarHeight)
	assert.Equal(t, 1.0, h.Health())

	h.SetHealth(0.5)
	assert.Equal(t, 0.5, h.Health())
	assert.Equal(t, 1.0, h.Trail(), "trail lags behind a hit")

	h.Update(0.1)
	assert.InDelta(t, 1-config.HealthBarDrainRate*0.1, h.Trail(), 1e-9)

	h.Update(10)
	assert.Equal(t, 0.5, h.Trail(), "trail never drops below the fill")
}

func TestEnemyHealthClamps(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -0.5, 0},
		{"over_full", 1.5, 1},
		{"inside", 0.25, 0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewEnemyHealth(0, 0, 80, 10)
			h.SetHealth(c.in)
			assert.Equal(t, c.want, h.Health())
		})
	}
}

func TestEnemyHealthSetPosition(t *testing.T) {
	h := NewEnemyHealth(0, 0, 80, 10)
	h.SetPosition(120, 45)
	assert.Equal(t, 120.0, h.X)
	assert.Equal(t, 45.0, h.Y)
}

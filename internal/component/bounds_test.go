package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBounds(t *testing.T) {
	cases := []struct {
		name       string
		ideal, max float64
		wantMin    float64
		wantMax    float64
	}{
		{"plain", 50, 300, 50, 300},
		{"max_below_ideal", 200, 100, 200, 200},
		{"negative_ideal", -5, 10, 0, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBounds(c.ideal, c.max)
			assert.Equal(t, c.wantMin, b.MinRadius)
			assert.Equal(t, c.wantMax, b.MaxRadius)
		})
	}
}

func TestBoundsInRange(t *testing.T) {
	b := NewBounds(50, 300)
	assert.True(t, b.InRange(300))
	assert.True(t, b.InRange(10))
	assert.False(t, b.InRange(300.01))
}

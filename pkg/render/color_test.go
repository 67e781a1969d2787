package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpColor(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{230, 41, 55, 255}

	cases := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, white},
		{"end", 1, red},
		{"clamped_low", -2, white},
		{"clamped_high", 3, red},
		{"middle", 0.5, color.RGBA{243, 148, 155, 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, LerpColor(white, red, c.t))
		})
	}
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 0, 200}, DarkenColor(color.RGBA{100, 50, 0, 200}))
}

package ai

import (
	"image/color"
	"testing"

	"go-tank-arena/internal/timer"

	"github.com/stretchr/testify/assert"
)

var (
	testNeutral = color.RGBA{255, 255, 255, 255}
	testHurt    = color.RGBA{230, 41, 55, 255}
)

func TestHurtTintRoundTrip(t *testing.T) {
	const duration = 0.5
	cases := []struct {
		name    string
		elapsed float64
		want    color.RGBA
	}{
		{"start", 0, testNeutral},
		{"halfway", duration / 2, testHurt},
		{"end", duration, testNeutral},
		{"quarter", duration / 4, color.RGBA{243, 148, 155, 255}},
		{"three_quarters", 3 * duration / 4, color.RGBA{243, 148, 155, 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HurtTint(c.elapsed, duration, testNeutral, testHurt))
		})
	}
}

func TestHurtTintZeroDuration(t *testing.T) {
	assert.Equal(t, testNeutral, HurtTint(0, 0, testNeutral, testHurt))
}

func TestDamageFeedbackTint(t *testing.T) {
	f := DamageFeedback{Neutral: testNeutral, Hurt: testHurt}
	clock := &timer.FrameClock{}
	hurt := timer.NewExpired(0.5, clock)

	clock.Tick(0.016)
	assert.Equal(t, testNeutral, f.Tint(hurt), "idle timer gives neutral")

	hurt.Reset()
	clock.Tick(0.25)
	assert.Equal(t, testHurt, f.Tint(hurt))

	clock.Tick(0.25)
	assert.Equal(t, testNeutral, f.Tint(hurt))
	assert.True(t, hurt.Complete())
}

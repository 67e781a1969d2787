// internal/ui/wave_progress.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WaveProgressIndicator shows how much of the current wave is cleared, with
// one pip per enemy still on the field.
type WaveProgressIndicator struct {
	X, Y float32
}

const (
	waveBarWidth   = 118
	waveBarHeight  = 12
	enemyPipWidth  = 16
	enemyPipHeight = 12
	enemyPipGap    = 9
	maxEnemyPips   = 8
	borderWidth    = 1
)

var (
	waveBarFill  = color.RGBA{70, 100, 120, 220}
	enemyPipFill = color.RGBA{230, 41, 55, 220}
	borderColor  = color.White
)

func NewWaveProgressIndicator(x, y float32) *WaveProgressIndicator {
	return &WaveProgressIndicator{X: x, Y: y}
}

// WaveCleared is the cleared share of a wave, in [0,1].
func WaveCleared(size, alive int) float64 {
	if size <= 0 {
		return 0
	}
	r := float64(size-alive) / float64(size)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (i *WaveProgressIndicator) Draw(screen *ebiten.Image, size, alive int) {
	vector.StrokeRect(screen, i.X, i.Y, waveBarWidth, waveBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(waveBarWidth-borderWidth*2) * WaveCleared(size, alive))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, waveBarHeight-borderWidth*2, waveBarFill, true)
	}

	pipY := i.Y + waveBarHeight + enemyPipGap
	for j := 0; j < alive && j < maxEnemyPips; j++ {
		pipX := i.X + float32(j)*(enemyPipWidth+enemyPipGap)
		vector.StrokeRect(screen, pipX, pipY, enemyPipWidth, enemyPipHeight, borderWidth, borderColor, true)
		vector.DrawFilledRect(screen, pipX+borderWidth, pipY+borderWidth, enemyPipWidth-borderWidth*2, enemyPipHeight-borderWidth*2, enemyPipFill, true)
	}
}

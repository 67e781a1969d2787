// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
)

var (
	healthPipHigh = color.RGBA{0, 121, 241, 255}
	healthPipLow  = color.RGBA{230, 41, 55, 255}
	healthPipGone = color.RGBA{0, 0, 0, 160}
)

// PlayerHealthIndicator shows the player's remaining hits as a grid of pips.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// PipColor picks the color of pip j. Pips turn red once half the health is gone.
func PipColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthPipGone
	}
	if health <= maxHealth/2 {
		return healthPipLow
	}
	return healthPipHigh
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, PipColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	if i.face != nil {
		label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
		rows := (maxHealth + HealthCols - 1) / HealthCols
		text.Draw(screen, label, i.face, int(i.X), int(i.Y+float32(rows)*step)+config.HUDFontSize, config.TextLightColor)
	}
}

// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDState is what the overlay shows for the current frame.
type HUDState struct {
	Score        int
	Health       int
	MaxHealth    int
	Wave         int
	WaveSize     int
	EnemiesAlive int
}

// HUD draws score, player health and the wave counter.
type HUD struct {
	face     font.Face
	health   *PlayerHealthIndicator
	wave     *WaveIndicator
	progress *WaveProgressIndicator
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:     face,
		health:   NewPlayerHealthIndicator(config.HUDMargin, config.HUDMargin, face),
		wave:     NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin, face),
		progress: NewWaveProgressIndicator(config.HUDMargin, config.ScreenHeight-config.HUDMargin-waveBarHeight-enemyPipHeight-enemyPipGap),
	}
}

// ScoreLine formats the top-right status text.
func ScoreLine(s HUDState) string {
	return fmt.Sprintf("Score: %d  Enemies: %d", s.Score, s.EnemiesAlive)
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	h.health.Draw(screen, s.Health, s.MaxHealth)
	h.wave.Draw(screen, s.Wave)
	h.progress.Draw(screen, s.WaveSize, s.EnemiesAlive)
	if h.face == nil {
		return
	}
	line := ScoreLine(s)
	bounds := text.BoundString(h.face, line)
	text.Draw(screen, line, h.face, config.ScreenWidth-config.HUDMargin-bounds.Dx(), config.HUDMargin-bounds.Min.Y, config.TextLightColor)
}

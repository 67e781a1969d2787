package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a texture plus the tint it is drawn with. Length runs along the
// local forward (+x) axis, Width across it. Image may be nil (headless use).
type Sprite struct {
	Image  *ebiten.Image
	Length float64
	Width  float64
	Color  color.RGBA
}

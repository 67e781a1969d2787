// internal/assets/texture_manager.go
package assets

import (
	"image/color"
	"math"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/defs"
	"go-tank-arena/pkg/render"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// defaultTankColor is used for archetypes without a color.
var defaultTankColor = color.RGBA{200, 200, 200, 255}

// TextureManager builds and caches the textures of every tank archetype.
// Textures are drawn white-on-color at load time; the hurt flash is applied
// as a color scale when drawing.
type TextureManager struct {
	bodies       map[string]*ebiten.Image
	turrets      map[string]*ebiten.Image
	playerBullet *ebiten.Image
	enemyBullet  *ebiten.Image
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		bodies:  make(map[string]*ebiten.Image),
		turrets: make(map[string]*ebiten.Image),
	}
}

// LoadTankTextures builds textures for archetypes that do not have one yet.
func (m *TextureManager) LoadTankTextures(tanks map[string]defs.TankDefinition) {
	for id, def := range tanks {
		if _, ok := m.bodies[id]; ok {
			continue
		}
		clr := def.Color.RGBA
		if clr.A == 0 {
			clr = defaultTankColor
		}
		m.bodies[id] = drawBody(def.Body, clr)
		m.turrets[id] = drawTurret(def.Turret, render.DarkenColor(clr))
	}
	if m.playerBullet == nil {
		m.playerBullet = drawBullet(config.PlayerBulletColor)
		m.enemyBullet = drawBullet(config.EnemyBulletColor)
	}
	log.Debug("tank textures ready", "count", len(m.bodies))
}

// Cleanup releases every texture.
func (m *TextureManager) Cleanup() {
	for id, img := range m.bodies {
		img.Deallocate()
		delete(m.bodies, id)
	}
	for id, img := range m.turrets {
		img.Deallocate()
		delete(m.turrets, id)
	}
}

// ReloadTankTextures rebuilds all tank textures, e.g. after the definitions
// file changed.
func (m *TextureManager) ReloadTankTextures(tanks map[string]defs.TankDefinition) {
	m.Cleanup()
	m.LoadTankTextures(tanks)
}

func (m *TextureManager) Body(id string) (*ebiten.Image, bool) {
	img, ok := m.bodies[id]
	return img, ok
}

func (m *TextureManager) Turret(id string) (*ebiten.Image, bool) {
	img, ok := m.turrets[id]
	return img, ok
}

func (m *TextureManager) PlayerBullet() *ebiten.Image { return m.playerBullet }

func (m *TextureManager) EnemyBullet() *ebiten.Image { return m.enemyBullet }

func imageSize(v float64) int {
	return int(math.Max(1, math.Ceil(v)))
}

// drawBody paints a hull facing +x: tracks along both long edges and a
// lighter glacis at the front.
func drawBody(size defs.SizeDefinition, clr color.RGBA) *ebiten.Image {
	w, h := imageSize(size.Length), imageSize(size.Width)
	img := ebiten.NewImage(w, h)
	img.Fill(clr)

	track := float32(h) / 5
	dark := render.DarkenColor(clr)
	vector.DrawFilledRect(img, 0, 0, float32(w), track, dark, false)
	vector.DrawFilledRect(img, 0, float32(h)-track, float32(w), track, dark, false)

	front := render.LerpColor(clr, color.RGBA{255, 255, 255, 255}, 0.35)
	vector.DrawFilledRect(img, float32(w)*0.8, track, float32(w)*0.2, float32(h)-2*track, front, false)
	return img
}

// drawTurret paints a round hub at the image center and a barrel reaching
// the right edge, so the barrel tip sits half the length ahead of the pivot.
func drawTurret(size defs.SizeDefinition, clr color.RGBA) *ebiten.Image {
	w := imageSize(size.Length)
	barrel := float32(math.Max(2, size.Width))
	h := imageSize(float64(barrel) * 2.5)
	img := ebiten.NewImage(w, h)

	cx, cy := float32(w)/2, float32(h)/2
	vector.DrawFilledRect(img, cx, cy-barrel/2, float32(w)-cx, barrel, clr, false)
	vector.DrawFilledCircle(img, cx, cy, float32(h)/2, clr, true)
	return img
}

func drawBullet(clr color.RGBA) *ebiten.Image {
	d := imageSize(config.BulletRadius * 2)
	img := ebiten.NewImage(d, d)
	r := float32(config.BulletRadius)
	vector.DrawFilledCircle(img, r, r, r, clr, true)
	return img
}

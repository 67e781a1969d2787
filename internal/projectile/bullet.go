// internal/projectile/bullet.go
package projectile

import (
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// DefaultLifetime is how long a bullet flies before it expires, in seconds.
const DefaultLifetime = 2.0

// Target is anything a bullet can hit.
type Target interface {
	Overlaps(p cp.Vector, radius float64) bool
	TakeDamage()
}

// Owner keeps the active list a bullet belongs to.
type Owner interface {
	RemoveBullet(b *Bullet)
}

// Bullet travels in a straight line along its heading until it expires or hits.
type Bullet struct {
	ID       types.EntityID
	Image    *ebiten.Image
	Speed    float64
	Heading  float64 // radians in [0, 2π)
	Damage   int
	Radius   float64
	Lifetime float64

	position cp.Vector
	velocity cp.Vector
	age      float64
	expired  bool
	owner    Owner
}

// NewBullet spawns a bullet at position flying along heading at speed.
func NewBullet(image *ebiten.Image, speed float64, position cp.Vector, heading float64, damage int, owner Owner) *Bullet {
	heading = utils.PositiveAngle(heading)
	return &Bullet{
		ID:       types.NewEntityID(),
		Image:    image,
		Speed:    speed,
		Heading:  heading,
		Damage:   damage,
		Radius:   config.BulletRadius,
		Lifetime: DefaultLifetime,
		position: position,
		velocity: cp.ForAngle(heading).Mult(speed),
		owner:    owner,
	}
}

func (b *Bullet) Position() cp.Vector { return b.position }

func (b *Bullet) Velocity() cp.Vector { return b.velocity }

func (b *Bullet) Expired() bool { return b.expired }

// Update moves the bullet and expires it once its lifetime runs out.
func (b *Bullet) Update(deltaTime float64) {
	if b.expired {
		return
	}
	b.position = b.position.Add(b.velocity.Mult(deltaTime))
	b.age += deltaTime
	if b.age >= b.Lifetime {
		b.expire()
	}
}

// Shift moves the bullet without ageing it (camera world shift).
func (b *Bullet) Shift(offset cp.Vector) {
	b.position = b.position.Add(offset)
}

// CheckCollision tests the bullet against target. On a hit the bullet leaves
// its owner's list first and then deals one hit per damage point.
func (b *Bullet) CheckCollision(target Target) bool {
	if b.expired || target == nil {
		return false
	}
	if !target.Overlaps(b.position, b.Radius) {
		return false
	}
	b.expire()
	for i := 0; i < b.Damage; i++ {
		target.TakeDamage()
	}
	return true
}

func (b *Bullet) expire() {
	b.expired = true
	if b.owner != nil {
		b.owner.RemoveBullet(b)
	}
}

// Draw renders the bullet centered on its position, rotated to its heading.
func (b *Bullet) Draw(screen *ebiten.Image) {
	if b.expired || b.Image == nil || screen == nil {
		return
	}
	w, h := b.Image.Bounds().Dx(), b.Image.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(b.Heading)
	op.GeoM.Translate(b.position.X, b.position.Y)
	screen.DrawImage(b.Image, op)
}

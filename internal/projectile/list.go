package projectile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// List is the set of bullets a single shooter has in flight. Bullets remove
// themselves on expiry or hit, so every pass walks a snapshot.
type List struct {
	bullets []*Bullet
}

func (l *List) Add(b *Bullet) {
	if b == nil {
		return
	}
	l.bullets = append(l.bullets, b)
}

// RemoveBullet drops b from the list; unknown bullets are ignored.
func (l *List) RemoveBullet(b *Bullet) {
	for i, cur := range l.bullets {
		if cur == b {
			l.bullets = append(l.bullets[:i], l.bullets[i+1:]...)
			return
		}
	}
}

func (l *List) Len() int { return len(l.bullets) }

// Bullets returns a copy of the active bullets.
func (l *List) Bullets() []*Bullet {
	return append([]*Bullet(nil), l.bullets...)
}

// Update advances every bullet, then checks the survivors against targets.
// A bullet stops at the first target it hits.
func (l *List) Update(deltaTime float64, targets ...Target) {
	for _, b := range l.Bullets() {
		b.Update(deltaTime)
		if b.Expired() {
			continue
		}
		for _, target := range targets {
			if b.CheckCollision(target) {
				break
			}
		}
	}
}

// Shift applies the camera world shift to every bullet.
func (l *List) Shift(offset cp.Vector) {
	for _, b := range l.bullets {
		b.Shift(offset)
	}
}

// Clear drops all bullets without notifying anyone.
func (l *List) Clear() {
	l.bullets = nil
}

func (l *List) Draw(screen *ebiten.Image) {
	for _, b := range l.bullets {
		b.Draw(screen)
	}
}

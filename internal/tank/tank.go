// internal/tank/tank.go
package tank

import (
	"image/color"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/physics"
	"go-tank-arena/internal/timer"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/render"
	"go-tank-arena/pkg/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Behavior decides what a tank does each frame. Player and AI control are
// the two implementations; the tank itself only carries shared state.
type Behavior interface {
	OnUpdate(t *Tank, deltaTime float64)
	OnDraw(t *Tank, screen *ebiten.Image)
	TakeDamage(t *Tank)
}

// Options describes a tank to spawn.
type Options struct {
	Kind         string
	Position     cp.Vector
	Rotation     float64
	HP           float64
	HurtDuration float64
	Body         component.Sprite
	Turret       component.Sprite
	Clock        timer.Clock
	World        *physics.World
}

// Tank is the entity shared by every controller: body with a child turret,
// a box collider, sprites and the health and hurt timers.
type Tank struct {
	ID   types.EntityID
	Kind string

	BodySprite   component.Sprite
	TurretSprite component.Sprite

	body     *scene.Object
	turret   *scene.Object
	collider *physics.BoxCollider
	health   *timer.Timer
	hurt     *timer.Timer
	tint     color.RGBA
	behavior Behavior
}

func New(opts Options) *Tank {
	body := scene.NewObject(opts.Position, opts.Rotation)
	turret := scene.NewObject(cp.Vector{}, 0)
	body.AddChild(turret)

	t := &Tank{
		ID:           types.NewEntityID(),
		Kind:         opts.Kind,
		BodySprite:   opts.Body,
		TurretSprite: opts.Turret,
		body:         body,
		turret:       turret,
		health:       timer.New(opts.HP, nil),
		hurt:         timer.NewExpired(opts.HurtDuration, opts.Clock),
		tint:         config.NeutralTint,
	}
	if opts.World != nil {
		t.collider = opts.World.NewBoxCollider(opts.Position, opts.Rotation, opts.Body.Length, opts.Body.Width)
	}
	return t
}

func (t *Tank) SetBehavior(b Behavior) { t.behavior = b }

func (t *Tank) Behavior() Behavior { return t.behavior }

// OnUpdate, OnDraw and TakeDamage are the entry points used by the game loop
// and by bullets; they forward to the behavior.
func (t *Tank) OnUpdate(deltaTime float64) {
	if t.behavior != nil {
		t.behavior.OnUpdate(t, deltaTime)
	}
}

func (t *Tank) OnDraw(screen *ebiten.Image) {
	if t.behavior != nil {
		t.behavior.OnDraw(t, screen)
		return
	}
	t.Draw(screen)
}

func (t *Tank) TakeDamage() {
	if t.behavior != nil {
		t.behavior.TakeDamage(t)
	}
}

func (t *Tank) Body() *scene.Object { return t.body }

func (t *Tank) Turret() *scene.Object { return t.turret }

// Collider is nil for tanks created without a physics world.
func (t *Tank) Collider() *physics.BoxCollider { return t.collider }

// Health counts hits toward death: the tank is dead once it completes.
func (t *Tank) Health() *timer.Timer { return t.health }

// Hurt measures the time since the last hit.
func (t *Tank) Hurt() *timer.Timer { return t.hurt }

func (t *Tank) Dead() bool { return t.health.Complete() }

func (t *Tank) Position() cp.Vector { return t.body.Position() }

// Forward is the body's facing as a unit vector.
func (t *Tank) Forward() cp.Vector { return t.body.Forward() }

// TurretForward is the turret's world facing as a unit vector.
func (t *Tank) TurretForward() cp.Vector { return t.turret.Forward() }

// Translate moves the body only; call SyncCollider once the frame's
// movement is final.
func (t *Tank) Translate(x, y float64) {
	t.body.Translate(x, y)
}

// Rotate turns the body together with the collider. The turret follows as
// a child.
func (t *Tank) Rotate(radians float64) {
	t.body.Rotate(radians)
	if t.collider != nil {
		t.collider.Rotate(radians)
	}
}

func (t *Tank) RotateTurret(radians float64) {
	t.turret.Rotate(radians)
}

func (t *Tank) SyncCollider() {
	if t.collider != nil {
		t.collider.SetPosition(t.body.Position())
	}
}

// HalfDiagonal is the distance from the hull center to a corner.
func (t *Tank) HalfDiagonal() float64 {
	if t.collider != nil {
		return t.collider.HalfDiagonal()
	}
	return cp.Vector{X: t.BodySprite.Length / 2, Y: t.BodySprite.Width / 2}.Length()
}

// Overlaps reports whether a circle of radius r at p touches the hull.
// Falls back to a bounding circle when there is no collider.
func (t *Tank) Overlaps(p cp.Vector, r float64) bool {
	if t.collider != nil {
		return t.collider.Overlaps(p, r)
	}
	return p.Distance(t.Position()) <= t.HalfDiagonal()+r
}

// Destroy releases the collider. Safe to call more than once.
func (t *Tank) Destroy() {
	if t.collider != nil {
		t.collider.Remove()
	}
}

func (t *Tank) Tint() color.RGBA { return t.tint }

func (t *Tank) SetTint(c color.RGBA) { t.tint = c }

// Draw renders the body and then the turret, both with the current tint.
func (t *Tank) Draw(screen *ebiten.Image) {
	p := t.body.Position()
	render.DrawCentered(screen, t.BodySprite.Image, p.X, p.Y, t.body.Heading(), t.tint)
	render.DrawCentered(screen, t.TurretSprite.Image, p.X, p.Y, t.turret.Heading(), t.tint)
}

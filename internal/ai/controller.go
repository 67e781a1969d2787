// internal/ai/controller.go
package ai

//go:generate go tool mockgen -destination=./mocks/ai_mock.go -package=mocks . Registry,HealthBar

import (
	"image/color"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/projectile"
	"go-tank-arena/internal/tank"
	"go-tank-arena/internal/timer"
	"go-tank-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Registry owns the live enemies and is told once when one dies.
type Registry interface {
	RemoveEnemy(t *tank.Tank)
}

// HealthBar is the widget drawn above an enemy.
type HealthBar interface {
	Update(deltaTime float64)
	SetPosition(x, y float64)
	SetHealth(fraction float64)
	Draw(screen *ebiten.Image)
}

// CameraView exposes the fixed screen reference and the live camera center.
type CameraView interface {
	Reference() cp.Vector
	Center() cp.Vector
}

// Target is the tank the AI hunts.
type Target interface {
	Position() cp.Vector
	projectile.Target
}

// Config is the tuning of one AI archetype. Angles are in radians.
type Config struct {
	IdealRange          float64
	MaxRange            float64
	Speed               float64
	RotationSpeed       float64
	TurretRotationSpeed float64
	AttackDelay         float64
	BulletSpeed         float64
	BulletDamage        int
	BulletLifetime      float64
	FireCone            float64
	DeadZone            float64
	ApproachCone        float64
	ReverseCone         float64
	NeutralTint         color.RGBA
	HurtTint            color.RGBA
}

func DefaultConfig() Config {
	return Config{
		IdealRange:          150,
		MaxRange:            300,
		Speed:               200,
		RotationSpeed:       utils.DegToRad(40),
		TurretRotationSpeed: utils.DegToRad(30),
		AttackDelay:         1.5,
		BulletSpeed:         800,
		BulletDamage:        2,
		BulletLifetime:      projectile.DefaultLifetime,
		FireCone:            utils.DegToRad(5),
		DeadZone:            0.005,
		ApproachCone:        utils.DegToRad(30),
		ReverseCone:         utils.DegToRad(150),
		NeutralTint:         config.NeutralTint,
		HurtTint:            config.HurtTint,
	}
}

// Deps are the collaborators an AI controller talks to.
type Deps struct {
	Target      Target
	Registry    Registry
	Camera      CameraView
	HealthBar   HealthBar
	BulletImage *ebiten.Image
	Clock       timer.Clock
}

// Controller is the AI behavior of an enemy tank.
type Controller struct {
	steering Steering
	turret   TurretControl
	fire     *FireControl
	feedback DamageFeedback

	bounds    component.Bounds
	target    Target
	registry  Registry
	camera    CameraView
	healthBar HealthBar
	barOffset float64

	canFire bool
	dead    bool
}

// NewController builds the behavior for t. It does not attach itself; call
// t.SetBehavior with the result.
func NewController(t *tank.Tank, cfg Config, deps Deps) *Controller {
	c := &Controller{
		steering: Steering{
			Speed:         cfg.Speed,
			RotationSpeed: cfg.RotationSpeed,
			DeadZone:      cfg.DeadZone,
			ApproachCone:  cfg.ApproachCone,
			ReverseCone:   cfg.ReverseCone,
		},
		turret: TurretControl{
			RotationSpeed: cfg.TurretRotationSpeed,
			FireCone:      cfg.FireCone,
			DeadZone:      cfg.DeadZone,
		},
		fire: &FireControl{
			Attack:   timer.New(cfg.AttackDelay, deps.Clock),
			Bullets:  &projectile.List{},
			Image:    deps.BulletImage,
			Speed:    cfg.BulletSpeed,
			Damage:   cfg.BulletDamage,
			Lifetime: cfg.BulletLifetime,
		},
		feedback:  DamageFeedback{Neutral: cfg.NeutralTint, Hurt: cfg.HurtTint},
		bounds:    component.NewBounds(cfg.IdealRange, cfg.MaxRange),
		target:    deps.Target,
		registry:  deps.Registry,
		camera:    deps.Camera,
		healthBar: deps.HealthBar,
		barOffset: t.HalfDiagonal() + config.HealthBarGap,
	}
	c.placeHealthBar(t)
	return c
}

func (c *Controller) Bounds() component.Bounds { return c.bounds }

func (c *Controller) CanFire() bool { return c.canFire }

// Dead reports whether the controller has already deregistered its tank.
func (c *Controller) Dead() bool { return c.dead }

func (c *Controller) Bullets() *projectile.List { return c.fire.Bullets }

func (c *Controller) SetTarget(target Target) { c.target = target }

// OnUpdate runs one frame. The order matters: the fire gate is computed
// before fire control reads it, and the health bar and collider are placed
// only after every translation of the frame.
func (c *Controller) OnUpdate(t *tank.Tank, deltaTime float64) {
	if c.dead || c.target == nil {
		return
	}
	c.move(t, deltaTime)
	c.aim(t, deltaTime)

	if c.healthBar != nil {
		c.healthBar.Update(deltaTime)
	}

	muzzle := Muzzle(t.Position(), t.TurretForward(), t.TurretSprite.Length)
	c.fire.Update(c.canFire, muzzle, t.Turret().Heading(), deltaTime, c.target)

	t.SetTint(c.feedback.Tint(t.Hurt()))

	if c.camera != nil {
		offset := c.camera.Reference().Sub(c.camera.Center())
		t.Translate(offset.X, offset.Y)
		c.fire.Bullets.Shift(offset)
	}

	c.placeHealthBar(t)
	t.SyncCollider()
}

func (c *Controller) OnDraw(t *tank.Tank, screen *ebiten.Image) {
	if c.healthBar != nil {
		c.healthBar.Draw(screen)
	}
	t.Draw(screen)
	c.fire.Bullets.Draw(screen)
}

// TakeDamage registers one hit. On the killing hit the tank is removed from
// the registry and the health bar is left untouched. Hits after death are
// ignored.
func (c *Controller) TakeDamage(t *tank.Tank) {
	if c.dead {
		return
	}
	t.Hurt().Reset()
	t.Health().CountBy(1)
	if t.Health().Complete() {
		c.dead = true
		if c.registry != nil {
			c.registry.RemoveEnemy(t)
		}
		return
	}
	if c.healthBar != nil {
		c.healthBar.SetHealth(t.Health().Fraction())
	}
}

func (c *Controller) move(t *tank.Tank, deltaTime float64) {
	d := c.steering.Steer(t.Position(), c.target.Position(), t.Forward(), c.bounds, deltaTime)
	if d.ShouldRotate {
		t.Rotate(d.Rotation)
	}
	if d.ShouldMove {
		t.Translate(d.Translation.X, d.Translation.Y)
	}
}

func (c *Controller) aim(t *tank.Tank, deltaTime float64) {
	d := c.turret.Aim(t.Position(), c.target.Position(), t.TurretForward(), c.bounds, deltaTime)
	c.canFire = d.CanFire
	if d.Rotation != 0 {
		t.RotateTurret(d.Rotation)
	}
}

func (c *Controller) placeHealthBar(t *tank.Tank) {
	if c.healthBar == nil {
		return
	}
	p := t.Position()
	c.healthBar.SetPosition(p.X, p.Y-c.barOffset)
}

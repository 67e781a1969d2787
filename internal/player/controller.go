// internal/player/controller.go
package player

import (
	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/projectile"
	"go-tank-arena/internal/tank"
	"go-tank-arena/internal/timer"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Config is the player's tuning. Angles are in radians.
type Config struct {
	Speed               float64
	RotationSpeed       float64
	TurretRotationSpeed float64
	AttackDelay         float64
	BulletSpeed         float64
	BulletDamage        int
	BulletLifetime      float64
}

// Targets lists what player bullets can hit this frame.
type Targets interface {
	Targets() []projectile.Target
}

// Camera is followed by the player; the whole world is shifted by Offset.
type Camera interface {
	Follow(p cp.Vector)
	Offset() cp.Vector
}

type Deps struct {
	Input       Input
	Targets     Targets
	Camera      Camera
	Events      *event.Dispatcher
	BulletImage *ebiten.Image
	Clock       timer.Clock
}

// Controller drives a tank from Input.
type Controller struct {
	cfg      Config
	input    Input
	targets  Targets
	camera   Camera
	events   *event.Dispatcher
	fire     *ai.FireControl
	feedback ai.DamageFeedback
	dead     bool
}

func NewController(cfg Config, deps Deps) *Controller {
	attack := timer.NewExpired(cfg.AttackDelay, deps.Clock)
	return &Controller{
		cfg:     cfg,
		input:   deps.Input,
		targets: deps.Targets,
		camera:  deps.Camera,
		events:  deps.Events,
		fire: &ai.FireControl{
			Attack:   attack,
			Bullets:  &projectile.List{},
			Image:    deps.BulletImage,
			Speed:    cfg.BulletSpeed,
			Damage:   cfg.BulletDamage,
			Lifetime: cfg.BulletLifetime,
		},
		feedback: ai.DamageFeedback{Neutral: config.NeutralTint, Hurt: config.HurtTint},
	}
}

func (c *Controller) Dead() bool { return c.dead }

func (c *Controller) Bullets() *projectile.List { return c.fire.Bullets }

func (c *Controller) OnUpdate(t *tank.Tank, deltaTime float64) {
	if c.dead {
		return
	}
	if c.input != nil {
		if steer := c.input.Steer(); steer != 0 {
			t.Rotate(steer * c.cfg.RotationSpeed * deltaTime)
		}
		if throttle := c.input.Throttle(); throttle != 0 {
			move := t.Forward().Mult(throttle * c.cfg.Speed * deltaTime)
			t.Translate(move.X, move.Y)
		}
		if turn := c.input.TurretTurn(); turn != 0 {
			t.RotateTurret(turn * c.cfg.TurretRotationSpeed * deltaTime)
		}
	}

	var targets []projectile.Target
	if c.targets != nil {
		targets = c.targets.Targets()
	}
	firing := c.input != nil && c.input.Fire()
	muzzle := ai.Muzzle(t.Position(), t.TurretForward(), t.TurretSprite.Length)
	c.fire.Update(firing, muzzle, t.Turret().Heading(), deltaTime, targets...)

	t.SetTint(c.feedback.Tint(t.Hurt()))

	if c.camera != nil {
		c.camera.Follow(t.Position())
		offset := c.camera.Offset()
		t.Translate(offset.X, offset.Y)
		c.fire.Bullets.Shift(offset)
	}
	t.SyncCollider()
}

func (c *Controller) OnDraw(t *tank.Tank, screen *ebiten.Image) {
	t.Draw(screen)
	c.fire.Bullets.Draw(screen)
}

// TakeDamage registers one hit; the killing hit announces PlayerDestroyed.
func (c *Controller) TakeDamage(t *tank.Tank) {
	if c.dead {
		return
	}
	t.Hurt().Reset()
	t.Health().CountBy(1)
	if !t.Health().Complete() {
		return
	}
	c.dead = true
	log.Info("player destroyed", "id", t.ID.Short())
	if c.events != nil {
		c.events.Dispatch(event.Event{Type: event.PlayerDestroyed})
	}
}

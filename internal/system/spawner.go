// internal/system/spawner.go
package system

import (
	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/defs"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/physics"
	"go-tank-arena/internal/player"
	"go-tank-arena/internal/tank"
	"go-tank-arena/internal/timer"
	"go-tank-arena/internal/ui"
	"go-tank-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Textures hands out the images of an archetype. Missing images are fine;
// the tank is then simulated without being drawn.
type Textures interface {
	Body(id string) (*ebiten.Image, bool)
	Turret(id string) (*ebiten.Image, bool)
	PlayerBullet() *ebiten.Image
	EnemyBullet() *ebiten.Image
}

// Spawner builds fully wired tanks from definitions.
type Spawner struct {
	Library  *defs.Library
	Textures Textures
	World    *physics.World
	Clock    timer.Clock
	Camera   interface {
		ai.CameraView
		player.Camera
	}
	Enemies    *entity.EnemyManager
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
}

func (s *Spawner) newTank(def defs.TankDefinition, position cp.Vector, rotation float64) *tank.Tank {
	var body, turret *ebiten.Image
	if s.Textures != nil {
		body, _ = s.Textures.Body(def.ID)
		turret, _ = s.Textures.Turret(def.ID)
	}
	return tank.New(tank.Options{
		Kind:         def.ID,
		Position:     position,
		Rotation:     rotation,
		HP:           def.HP,
		HurtDuration: def.HurtDuration,
		Body:         component.Sprite{Image: body, Length: def.Body.Length, Width: def.Body.Width, Color: def.Color.RGBA},
		Turret:       component.Sprite{Image: turret, Length: def.Turret.Length, Width: def.Turret.Width, Color: def.Color.RGBA},
		Clock:        s.Clock,
		World:        s.World,
	})
}

// SpawnPlayer creates the player tank at the level's player spawn.
func (s *Spawner) SpawnPlayer(input player.Input) (*tank.Tank, *player.Controller, error) {
	def, err := s.Library.PlayerTank()
	if err != nil {
		return nil, nil, err
	}
	spawn := s.Library.Level.Player
	t := s.newTank(def, cp.Vector{X: spawn.X, Y: spawn.Y}, utils.DegToRad(spawn.Rotation))

	var bullet *ebiten.Image
	if s.Textures != nil {
		bullet = s.Textures.PlayerBullet()
	}
	deps := player.Deps{
		Input:       input,
		Events:      s.Dispatcher,
		BulletImage: bullet,
		Clock:       s.Clock,
	}
	if s.Enemies != nil {
		deps.Targets = s.Enemies
	}
	if s.Camera != nil {
		deps.Camera = s.Camera
	}
	c := player.NewController(PlayerConfig(def), deps)
	t.SetBehavior(c)
	return t, c, nil
}

// SpawnEnemy creates an AI tank hunting target and registers it.
func (s *Spawner) SpawnEnemy(spawn defs.SpawnDefinition, target ai.Target) (*tank.Tank, error) {
	id := spawn.Tank
	if id == "" && s.Rng != nil {
		if i := utils.ChooseWeighted(s.Rng, spawn.Choices); i >= 0 {
			id = spawn.Choices[i].Tank
		}
	}
	def, err := s.Library.Tank(id)
	if err != nil {
		return nil, err
	}

	rotation := utils.DegToRad(spawn.Rotation)
	if spawn.Jitter > 0 && s.Rng != nil {
		rotation += utils.DegToRad(s.Rng.Jitter(spawn.Jitter))
	}
	position := cp.Vector{X: spawn.X, Y: spawn.Y}
	t := s.newTank(def, position, rotation)

	var bullet *ebiten.Image
	if s.Textures != nil {
		bullet = s.Textures.EnemyBullet()
	}
	deps := ai.Deps{
		Target:      target,
		HealthBar:   ui.NewEnemyHealth(position.X, position.Y, config.HealthBarWidth, config.HealthBarHeight),
		BulletImage: bullet,
		Clock:       s.Clock,
	}
	if s.Enemies != nil {
		deps.Registry = s.Enemies
	}
	if s.Camera != nil {
		deps.Camera = s.Camera
	}
	t.SetBehavior(ai.NewController(t, AIConfig(def), deps))
	if s.Enemies != nil {
		s.Enemies.AddEnemy(t)
	}
	return t, nil
}

// internal/system/archetype.go
package system

import (
	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/defs"
	"go-tank-arena/internal/player"
	"go-tank-arena/internal/utils"
)

// AIConfig turns an archetype into controller tuning. Zero cones and
// dead-zone fall back to the defaults.
func AIConfig(def defs.TankDefinition) ai.Config {
	cfg := ai.DefaultConfig()
	cfg.IdealRange = def.IdealRange
	cfg.MaxRange = def.MaxRange
	cfg.Speed = def.Speed
	cfg.RotationSpeed = utils.DegToRad(def.RotationSpeedDeg)
	cfg.TurretRotationSpeed = utils.DegToRad(def.TurretRotationSpeedDeg)
	cfg.AttackDelay = def.AttackDelay
	cfg.BulletSpeed = def.BulletSpeed
	cfg.BulletDamage = def.BulletDamage
	if def.BulletLifetime > 0 {
		cfg.BulletLifetime = def.BulletLifetime
	}
	if def.FireConeDeg > 0 {
		cfg.FireCone = utils.DegToRad(def.FireConeDeg)
	}
	if def.DeadZone > 0 {
		cfg.DeadZone = def.DeadZone
	}
	if def.ApproachConeDeg > 0 {
		cfg.ApproachCone = utils.DegToRad(def.ApproachConeDeg)
	}
	if def.ReverseConeDeg > 0 {
		cfg.ReverseCone = utils.DegToRad(def.ReverseConeDeg)
	}
	cfg.NeutralTint = config.NeutralTint
	cfg.HurtTint = config.HurtTint
	return cfg
}

func PlayerConfig(def defs.TankDefinition) player.Config {
	return player.Config{
		Speed:               def.Speed,
		RotationSpeed:       utils.DegToRad(def.RotationSpeedDeg),
		TurretRotationSpeed: utils.DegToRad(def.TurretRotationSpeedDeg),
		AttackDelay:         def.AttackDelay,
		BulletSpeed:         def.BulletSpeed,
		BulletDamage:        def.BulletDamage,
		BulletLifetime:      def.BulletLifetime,
	}
}

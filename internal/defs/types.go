// internal/defs/types.go
package defs

import "fmt"

// SizeDefinition is a sprite footprint: Length along the facing, Width across it.
type SizeDefinition struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
}

// TankDefinition is one tank archetype. Angles are given in degrees.
type TankDefinition struct {
	ID                     string         `yaml:"-"`
	HP                     float64        `yaml:"hp"`
	MaxRange               float64        `yaml:"max_range"`
	IdealRange             float64        `yaml:"ideal_range"`
	Speed                  float64        `yaml:"speed"`
	RotationSpeedDeg       float64        `yaml:"rotation_speed_deg"`
	TurretRotationSpeedDeg float64        `yaml:"turret_rotation_speed_deg"`
	AttackDelay            float64        `yaml:"attack_delay"`
	HurtDuration           float64        `yaml:"hurt_duration"`
	BulletSpeed            float64        `yaml:"bullet_speed"`
	BulletDamage           int            `yaml:"bullet_damage"`
	BulletLifetime         float64        `yaml:"bullet_lifetime"`
	FireConeDeg            float64        `yaml:"fire_cone_deg"`
	DeadZone               float64        `yaml:"dead_zone"`
	ApproachConeDeg        float64        `yaml:"approach_cone_deg"`
	ReverseConeDeg         float64        `yaml:"reverse_cone_deg"`
	Body                   SizeDefinition `yaml:"body"`
	Turret                 SizeDefinition `yaml:"turret"`
	Color                  YAMLColor      `yaml:"color"`
}

// SpawnDefinition places one tank. When Tank is empty the archetype is drawn
// from Choices by weight.
type SpawnDefinition struct {
	Tank     string           `yaml:"tank"`
	Choices  []WeightedChoice `yaml:"choices"`
	X        float64          `yaml:"x"`
	Y        float64          `yaml:"y"`
	Rotation float64          `yaml:"rotation"` // degrees
	Jitter   float64          `yaml:"jitter"`   // degrees of random heading spread
}

type WeightedChoice struct {
	Tank   string `yaml:"tank"`
	Weight int    `yaml:"weight"`
}

// DrawWeight lets choices be picked with utils.ChooseWeighted.
func (c WeightedChoice) DrawWeight() int { return c.Weight }

type WaveDefinition struct {
	Spawns []SpawnDefinition `yaml:"spawns"`
}

type LevelDefinition struct {
	Player SpawnDefinition  `yaml:"player"`
	Waves  []WaveDefinition `yaml:"waves"`
}

// Library is everything loaded from one definitions file.
type Library struct {
	Player string                    `yaml:"player"`
	Tanks  map[string]TankDefinition `yaml:"tanks"`
	Level  LevelDefinition           `yaml:"level"`
}

// Tank looks up an archetype by id.
func (l *Library) Tank(id string) (TankDefinition, error) {
	def, ok := l.Tanks[id]
	if !ok {
		return TankDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTank, id)
	}
	return def, nil
}

// PlayerTank is the archetype the player drives.
func (l *Library) PlayerTank() (TankDefinition, error) {
	return l.Tank(l.Player)
}

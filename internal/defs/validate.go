package defs

import (
	"errors"
	"fmt"
	"sort"
)

// Validate checks every archetype and every spawn of the level. All problems
// are reported together.
func Validate(lib *Library) error {
	var errs []error

	ids := make([]string, 0, len(lib.Tanks))
	for id := range lib.Tanks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := validateTank(id, lib.Tanks[id]); err != nil {
			errs = append(errs, err)
		}
	}

	if _, ok := lib.Tanks[lib.Player]; !ok {
		errs = append(errs, fmt.Errorf("player: %w: %q", ErrUnknownTank, lib.Player))
	}
	if len(lib.Level.Waves) == 0 {
		errs = append(errs, ErrNoLevel)
	}
	for w, wave := range lib.Level.Waves {
		for s, spawn := range wave.Spawns {
			if err := validateSpawn(lib, spawn); err != nil {
				errs = append(errs, fmt.Errorf("wave %d spawn %d: %w", w+1, s+1, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateTank(id string, def TankDefinition) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("tank %s: %w: %s", id, ErrInvalidDefinition, fmt.Sprintf(format, args...))
	}
	switch {
	case def.HP <= 0:
		return invalid("hp must be positive")
	case def.IdealRange < 0:
		return invalid("ideal_range must not be negative")
	case def.MaxRange < def.IdealRange:
		return invalid("max_range %.0f is below ideal_range %.0f", def.MaxRange, def.IdealRange)
	case def.Speed < 0 || def.RotationSpeedDeg < 0 || def.TurretRotationSpeedDeg < 0 || def.BulletSpeed < 0:
		return invalid("speeds must not be negative")
	case def.AttackDelay <= 0:
		return invalid("attack_delay must be positive")
	case def.HurtDuration <= 0:
		return invalid("hurt_duration must be positive")
	case def.Body.Length <= 0 || def.Body.Width <= 0:
		return invalid("body size must be positive")
	}
	return nil
}

func validateSpawn(lib *Library, spawn SpawnDefinition) error {
	if spawn.Tank != "" {
		if _, ok := lib.Tanks[spawn.Tank]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTank, spawn.Tank)
		}
		return nil
	}
	if len(spawn.Choices) == 0 {
		return fmt.Errorf("%w: spawn needs a tank or choices", ErrInvalidDefinition)
	}
	for _, c := range spawn.Choices {
		if _, ok := lib.Tanks[c.Tank]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTank, c.Tank)
		}
	}
	return nil
}

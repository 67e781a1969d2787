// internal/system/wave.go
package system

import (
	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"

	"github.com/charmbracelet/log"
)

// WaveSystem starts the next wave of the level once the arena is empty.
// After the last wave the level loops from the first one.
type WaveSystem struct {
	enemies         *entity.EnemyManager
	spawner         *Spawner
	eventDispatcher *event.Dispatcher
	target          ai.Target
	wave            int
	size            int
}

func NewWaveSystem(enemies *entity.EnemyManager, spawner *Spawner, eventDispatcher *event.Dispatcher, target ai.Target) *WaveSystem {
	return &WaveSystem{
		enemies:         enemies,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		target:          target,
	}
}

// Wave is the number of the wave in progress, starting at 1.
func (s *WaveSystem) Wave() int { return s.wave }

// Size is how many enemies the current wave spawned.
func (s *WaveSystem) Size() int { return s.size }

func (s *WaveSystem) Update() {
	if s.enemies.Count() > 0 {
		return
	}
	s.StartWave()
}

// StartWave spawns the next wave using the spawner's current library, so
// reloaded definitions take effect here.
func (s *WaveSystem) StartWave() {
	waves := s.spawner.Library.Level.Waves
	if len(waves) == 0 {
		return
	}
	s.wave++
	def := waves[(s.wave-1)%len(waves)]

	spawned := 0
	for _, spawn := range def.Spawns {
		if _, err := s.spawner.SpawnEnemy(spawn, s.target); err != nil {
			log.Error("spawn failed", "wave", s.wave, "err", err)
			continue
		}
		spawned++
	}
	s.size = spawned
	log.Info("wave started", "wave", s.wave, "enemies", spawned)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveStarted,
			Data: event.WaveStartedData{Number: s.wave, Enemies: spawned},
		})
	}
}

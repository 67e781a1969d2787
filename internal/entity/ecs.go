// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/projectile"
	"go-tank-arena/internal/tank"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// EnemyManager owns the live enemy tanks, keyed by id. Removal is safe from
// inside an update pass: iteration always runs over a snapshot and skips
// tanks removed earlier in the same pass.
type EnemyManager struct {
	enemies    map[types.EntityID]*tank.Tank
	order      []types.EntityID
	dispatcher *event.Dispatcher
	destroyed  int
}

func NewEnemyManager(dispatcher *event.Dispatcher) *EnemyManager {
	return &EnemyManager{
		enemies:    make(map[types.EntityID]*tank.Tank),
		dispatcher: dispatcher,
	}
}

func (m *EnemyManager) AddEnemy(t *tank.Tank) {
	if t == nil {
		return
	}
	if _, exists := m.enemies[t.ID]; exists {
		return
	}
	m.enemies[t.ID] = t
	m.order = append(m.order, t.ID)
	log.Debug("enemy spawned", "id", t.ID.Short(), "kind", t.Kind, "heading", utils.RadToDeg(t.Body().Heading()))
}

// RemoveEnemy deregisters t, frees its collider and announces
// EnemyDestroyed. Unknown or already removed tanks are ignored.
func (m *EnemyManager) RemoveEnemy(t *tank.Tank) {
	if t == nil {
		return
	}
	if _, exists := m.enemies[t.ID]; !exists {
		return
	}
	delete(m.enemies, t.ID)
	for i, id := range m.order {
		if id == t.ID {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
	t.Destroy()
	m.destroyed++
	log.Info("enemy destroyed", "id", t.ID.Short(), "kind", t.Kind)
	if m.dispatcher != nil {
		m.dispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{ID: t.ID, Kind: t.Kind},
		})
	}
}

// Retarget points every AI-driven enemy at target. A nil target makes them
// hold still.
func (m *EnemyManager) Retarget(target ai.Target) {
	for _, id := range m.order {
		if c, ok := m.enemies[id].Behavior().(*ai.Controller); ok {
			c.SetTarget(target)
		}
	}
}

// Enemies returns the live tanks in spawn order.
func (m *EnemyManager) Enemies() []*tank.Tank {
	out := make([]*tank.Tank, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.enemies[id])
	}
	return out
}

func (m *EnemyManager) Get(id types.EntityID) (*tank.Tank, bool) {
	t, ok := m.enemies[id]
	return t, ok
}

func (m *EnemyManager) Count() int { return len(m.enemies) }

// Destroyed counts removals since the manager was created or cleared.
func (m *EnemyManager) Destroyed() int { return m.destroyed }

// Targets exposes the live enemies to player bullets.
func (m *EnemyManager) Targets() []projectile.Target {
	out := make([]projectile.Target, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.enemies[id])
	}
	return out
}

func (m *EnemyManager) Update(deltaTime float64) {
	for _, t := range m.Enemies() {
		if _, alive := m.enemies[t.ID]; !alive {
			continue
		}
		t.OnUpdate(deltaTime)
	}
}

func (m *EnemyManager) Draw(screen *ebiten.Image) {
	for _, t := range m.Enemies() {
		t.OnDraw(screen)
	}
}

// Clear drops every enemy without announcing anything, e.g. on restart.
func (m *EnemyManager) Clear() {
	for _, t := range m.enemies {
		t.Destroy()
	}
	m.enemies = make(map[types.EntityID]*tank.Tank)
	m.order = nil
	m.destroyed = 0
}

// Kinds counts live enemies per archetype, sorted by name.
func (m *EnemyManager) Kinds() []KindCount {
	counts := make(map[string]int)
	for _, t := range m.enemies {
		counts[t.Kind]++
	}
	out := make([]KindCount, 0, len(counts))
	for kind, n := range counts {
		out = append(out, KindCount{Kind: kind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

type KindCount struct {
	Kind  string
	Count int
}

package entity

import (
	"testing"

	"go-tank-arena/internal/ai"
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/physics"
	"go-tank-arena/internal/tank"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// killer removes the enemy it is attached to, plus an optional victim, on
// its first update.
type killer struct {
	m       *EnemyManager
	victim  *tank.Tank
	updates int
}

func (k *killer) OnUpdate(t *tank.Tank, _ float64) {
	k.updates++
	k.m.RemoveEnemy(t)
	if k.victim != nil {
		k.m.RemoveEnemy(k.victim)
	}
}
func (k *killer) OnDraw(*tank.Tank, *ebiten.Image) {}
func (k *killer) TakeDamage(*tank.Tank)            {}

func newEnemy(world *physics.World, kind string) *tank.Tank {
	return tank.New(tank.Options{
		Kind:         kind,
		HP:           3,
		HurtDuration: 0.5,
		Body:         component.Sprite{Length: 40, Width: 30},
		World:        world,
	})
}

func TestEnemyManagerRemoveIsIdempotent(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.EnemyDestroyedData
	d.Subscribe(event.EnemyDestroyed, event.Func(func(e event.Event) {
		got = append(got, e.Data.(event.EnemyDestroyedData))
	}))

	world := physics.NewWorld()
	m := NewEnemyManager(d)
	e := newEnemy(world, "grunt")
	m.AddEnemy(e)
	m.AddEnemy(e)
	require.Equal(t, 1, m.Count())

	m.RemoveEnemy(e)
	m.RemoveEnemy(e)
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 1, m.Destroyed())
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, "grunt", got[0].Kind)
	assert.True(t, e.Collider().Removed())
	assert.False(t, e.Overlaps(cp.Vector{}, 100))
}

func TestEnemyManagerUpdateSkipsRemoved(t *testing.T) {
	m := NewEnemyManager(nil)
	a := newEnemy(nil, "grunt")
	b := newEnemy(nil, "scout")
	ka := &killer{m: m, victim: b}
	kb := &killer{m: m}
	a.SetBehavior(ka)
	b.SetBehavior(kb)
	m.AddEnemy(a)
	m.AddEnemy(b)

	m.Update(0.016)
	assert.Equal(t, 1, ka.updates)
	assert.Equal(t, 0, kb.updates, "removed earlier in the same pass")
	assert.Equal(t, 0, m.Count())
}

func TestEnemyManagerOrderAndTargets(t *testing.T) {
	m := NewEnemyManager(nil)
	a, b, c := newEnemy(nil, "grunt"), newEnemy(nil, "scout"), newEnemy(nil, "grunt")
	m.AddEnemy(a)
	m.AddEnemy(b)
	m.AddEnemy(c)
	m.RemoveEnemy(b)

	assert.Equal(t, []*tank.Tank{a, c}, m.Enemies())
	assert.Len(t, m.Targets(), 2)
	assert.Equal(t, []KindCount{{Kind: "grunt", Count: 2}}, m.Kinds())

	got, ok := m.Get(c.ID)
	assert.True(t, ok)
	assert.Same(t, c, got)

	m.Clear()
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, m.Enemies())
}

type fixedTarget struct{ position cp.Vector }

func (f *fixedTarget) Position() cp.Vector              { return f.position }
func (f *fixedTarget) Overlaps(cp.Vector, float64) bool { return false }
func (f *fixedTarget) TakeDamage()                      {}

func TestEnemyManagerRetarget(t *testing.T) {
	m := NewEnemyManager(nil)
	e := newEnemy(nil, "grunt")
	target := &fixedTarget{position: cp.Vector{X: 400}}
	e.SetBehavior(ai.NewController(e, ai.DefaultConfig(), ai.Deps{Target: target}))
	plain := newEnemy(nil, "scout")
	m.AddEnemy(e)
	m.AddEnemy(plain)

	m.Retarget(nil)
	m.Update(0.1)
	assert.Equal(t, cp.Vector{}, e.Position(), "no target, no movement")

	m.Retarget(target)
	m.Update(0.1)
	assert.InDelta(t, 20, e.Position().X, 1e-9, "speed 200 for 0.1 s toward the target")
}

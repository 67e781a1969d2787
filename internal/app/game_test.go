package app

import (
	"testing"

	"go-tank-arena/internal/defs"
	"go-tank-arena/internal/event"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleInput struct{}

func (idleInput) Throttle() float64   { return 0 }
func (idleInput) Steer() float64      { return 0 }
func (idleInput) TurretTurn() float64 { return 0 }
func (idleInput) Fire() bool          { return false }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	lib, err := defs.Load("")
	require.NoError(t, err)
	g, err := NewGame(Options{Library: lib, Seed: 1, Input: idleInput{}})
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestGameStartsFirstWave(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, 0, g.WaveSystem.Wave())

	g.Update(1.0 / 60)
	assert.Equal(t, 1, g.WaveSystem.Wave())
	assert.Equal(t, 1, g.Enemies.Count())
	assert.False(t, g.Over())
}

func TestGameKeepsPlayerCentered(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.Update(1.0 / 60)
	}
	center := cp.Vector{X: 320, Y: 240}
	assert.InDelta(t, 0, g.Player().Position().Distance(center), 1e-9)
}

func TestGameScoresKills(t *testing.T) {
	g := newTestGame(t)
	g.Update(1.0 / 60)
	require.Equal(t, 1, g.Enemies.Count())

	enemy := g.Enemies.Enemies()[0]
	for !enemy.Dead() {
		enemy.TakeDamage()
	}
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 0, g.Enemies.Count())

	g.Update(1.0 / 60)
	assert.Equal(t, 2, g.WaveSystem.Wave())
	assert.Equal(t, 2, g.Enemies.Count())
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t)
	for !g.Player().Dead() {
		g.Player().TakeDamage()
	}
	assert.True(t, g.Over())
}

func TestGameApplyLibrary(t *testing.T) {
	g := newTestGame(t)
	var got []event.DefsReloadedData
	g.EventDispatcher.Subscribe(event.DefsReloaded, event.Func(func(e event.Event) {
		got = append(got, e.Data.(event.DefsReloadedData))
	}))

	lib, err := defs.Load("")
	require.NoError(t, err)
	g.ApplyLibrary(lib, "tanks.yaml")
	assert.Equal(t, []event.DefsReloadedData{{Path: "tanks.yaml", Tanks: len(lib.Tanks)}}, got)
}

func TestWrapGrid(t *testing.T) {
	assert.Equal(t, cp.Vector{X: 10, Y: 54}, wrapGrid(cp.Vector{X: 74, Y: -10}))
}

func TestGameEnemiesHoldAfterPlayerDies(t *testing.T) {
	g := newTestGame(t)
	g.Update(1.0 / 60)
	require.Equal(t, 1, g.Enemies.Count())
	enemy := g.Enemies.Enemies()[0]

	for !g.Player().Dead() {
		g.Player().TakeDamage()
	}
	before := enemy.Position()
	for i := 0; i < 10; i++ {
		g.Update(1.0 / 60)
	}
	assert.Equal(t, before, enemy.Position())
}

package tank

import (
	"math"
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/physics"
	"go-tank-arena/internal/timer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBehavior struct {
	updates []float64
	draws   int
	hits    int
}

func (b *recordingBehavior) OnUpdate(_ *Tank, dt float64)    { b.updates = append(b.updates, dt) }
func (b *recordingBehavior) OnDraw(_ *Tank, _ *ebiten.Image) { b.draws++ }
func (b *recordingBehavior) TakeDamage(t *Tank)              { b.hits++; t.Health().CountBy(1) }

func newTestTank(world *physics.World) *Tank {
	return New(Options{
		Kind:         "light",
		Position:     cp.Vector{X: 100, Y: 100},
		HP:           3,
		HurtDuration: 0.5,
		Body:         component.Sprite{Length: 40, Width: 30},
		Turret:       component.Sprite{Length: 30, Width: 8},
		Clock:        &timer.FrameClock{},
		World:        world,
	})
}

func TestTankForwardsToBehavior(t *testing.T) {
	tk := newTestTank(nil)
	b := &recordingBehavior{}
	tk.SetBehavior(b)

	tk.OnUpdate(0.016)
	tk.OnDraw(nil)
	tk.TakeDamage()
	tk.TakeDamage()

	assert.Equal(t, []float64{0.016}, b.updates)
	assert.Equal(t, 1, b.draws)
	assert.Equal(t, 2, b.hits)
	assert.False(t, tk.Dead())
	tk.TakeDamage()
	assert.True(t, tk.Dead())
}

func TestTankTimersStartIdle(t *testing.T) {
	tk := newTestTank(nil)
	assert.False(t, tk.Health().Complete())
	assert.Equal(t, 3.0, tk.Health().Remaining())
	assert.True(t, tk.Hurt().Complete(), "no flash before the first hit")
}

func TestTankTurretFollowsBody(t *testing.T) {
	tk := newTestTank(nil)
	tk.RotateTurret(math.Pi / 2)
	tk.Rotate(math.Pi / 2)

	assert.InDelta(t, -1, tk.TurretForward().X, 1e-9)
	assert.InDelta(t, 0, tk.TurretForward().Y, 1e-9)
	assert.InDelta(t, 1, tk.Forward().Y, 1e-9)
}

func TestTankColliderTracksBody(t *testing.T) {
	world := physics.NewWorld()
	tk := newTestTank(world)
	require.NotNil(t, tk.Collider())

	tk.Translate(50, 0)
	assert.Equal(t, 100.0, tk.Collider().Position().X, "collider waits for SyncCollider")
	tk.SyncCollider()
	assert.InDelta(t, 150, tk.Collider().Position().X, 1e-9)

	tk.Rotate(0.3)
	assert.InDelta(t, 0.3, tk.Collider().Angle(), 1e-9)

	assert.True(t, tk.Overlaps(cp.Vector{X: 150, Y: 100}, 1))
	assert.False(t, tk.Overlaps(cp.Vector{X: 400, Y: 100}, 1))

	tk.Destroy()
	tk.Destroy()
	assert.False(t, tk.Overlaps(cp.Vector{X: 150, Y: 100}, 1))
}

func TestTankOverlapsWithoutCollider(t *testing.T) {
	tk := newTestTank(nil)
	assert.InDelta(t, 25, tk.HalfDiagonal(), 1e-9)
	assert.True(t, tk.Overlaps(cp.Vector{X: 120, Y: 100}, 3))
	assert.False(t, tk.Overlaps(cp.Vector{X: 200, Y: 100}, 3))
}

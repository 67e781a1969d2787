// internal/app/game.go
package app

import (
	"math"

	"go-tank-arena/internal/assets"
	"go-tank-arena/internal/camera"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/defs"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/physics"
	"go-tank-arena/internal/player"
	"go-tank-arena/internal/system"
	"go-tank-arena/internal/tank"
	"go-tank-arena/internal/timer"
	"go-tank-arena/internal/ui"
	"go-tank-arena/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font"
)

// Options configures a new arena.
type Options struct {
	Library  *defs.Library
	Seed     int64
	Input    player.Input
	Textures *assets.TextureManager // nil runs without textures
	Font     font.Face              // nil hides HUD text
	Watcher  *defs.Watcher          // nil disables hot reload
}

// Game is one arena session: the player, the enemy registry, waves and the
// shared frame clock.
type Game struct {
	EventDispatcher *event.Dispatcher
	Enemies         *entity.EnemyManager
	WaveSystem      *system.WaveSystem
	Camera          *camera.Camera
	World           *physics.World
	Clock           *timer.FrameClock
	Rng             *utils.PRNGService

	player     *tank.Tank
	controller *player.Controller
	spawner    *system.Spawner
	textures   *assets.TextureManager
	hud        *ui.HUD
	watcher    *defs.Watcher
	score      int
	grid       cp.Vector
}

func NewGame(opts Options) (*Game, error) {
	dispatcher := event.NewDispatcher()
	g := &Game{
		EventDispatcher: dispatcher,
		Enemies:         entity.NewEnemyManager(dispatcher),
		Camera:          camera.New(cp.Vector{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}),
		World:           physics.NewWorld(),
		Clock:           &timer.FrameClock{},
		Rng:             utils.NewPRNGService(opts.Seed),
		textures:        opts.Textures,
		hud:             ui.NewHUD(opts.Font),
		watcher:         opts.Watcher,
	}

	g.spawner = &system.Spawner{
		Library:    opts.Library,
		World:      g.World,
		Clock:      g.Clock,
		Camera:     g.Camera,
		Enemies:    g.Enemies,
		Dispatcher: dispatcher,
		Rng:        g.Rng,
	}
	if g.textures != nil {
		g.textures.LoadTankTextures(opts.Library.Tanks)
		g.spawner.Textures = g.textures
	}

	p, c, err := g.spawner.SpawnPlayer(opts.Input)
	if err != nil {
		return nil, err
	}
	g.player, g.controller = p, c
	g.WaveSystem = system.NewWaveSystem(g.Enemies, g.spawner, dispatcher, p)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyDestroyed, listener)
	dispatcher.Subscribe(event.PlayerDestroyed, listener)
	return g, nil
}

// GameEventListener keeps the score and stands the enemies down when the
// player is destroyed.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		l.game.score++
	case event.PlayerDestroyed:
		l.game.Enemies.Retarget(nil)
	}
}

func (g *Game) Player() *tank.Tank { return g.player }

func (g *Game) Score() int { return g.score }

// Over reports whether the player has been destroyed.
func (g *Game) Over() bool { return g.controller.Dead() }

// Update runs one frame. The clock ticks first so every timer sees this
// frame's delta; the player moves and recenters the camera before the
// enemies read it.
func (g *Game) Update(deltaTime float64) {
	g.pollDefs()

	g.Clock.Tick(deltaTime)
	g.player.OnUpdate(deltaTime)
	g.grid = wrapGrid(g.grid.Add(g.Camera.Offset()))
	g.Enemies.Update(deltaTime)
	g.World.Step(deltaTime)

	if !g.Over() {
		g.WaveSystem.Update()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.drawGrid(screen)
	g.Enemies.Draw(screen)
	g.player.OnDraw(screen)
	g.hud.Draw(screen, ui.HUDState{
		Score:        g.score,
		Health:       int(g.player.Health().Remaining()),
		MaxHealth:    int(g.player.Health().Delay()),
		Wave:         g.WaveSystem.Wave(),
		WaveSize:     g.WaveSystem.Size(),
		EnemiesAlive: g.Enemies.Count(),
	})
}

// Close releases the collider world and textures.
func (g *Game) Close() {
	g.Enemies.Clear()
	if g.textures != nil {
		g.textures.Cleanup()
	}
}

// ApplyLibrary swaps in new definitions. Tanks already on the field keep
// their tuning; the next wave uses the new one.
func (g *Game) ApplyLibrary(lib *defs.Library, path string) {
	g.spawner.Library = lib
	if g.textures != nil {
		g.textures.ReloadTankTextures(lib.Tanks)
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.DefsReloaded,
		Data: event.DefsReloadedData{Path: path, Tanks: len(lib.Tanks)},
	})
}

func (g *Game) pollDefs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			lib, err := defs.LoadFile(path)
			if err != nil {
				log.Error("reload failed, keeping previous definitions", "path", path, "err", err)
				continue
			}
			log.Info("definitions reloaded", "path", path, "tanks", len(lib.Tanks))
			g.ApplyLibrary(lib, path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Error("definitions watcher", "err", err)
		default:
			return
		}
	}
}

const gridCell = 64

// drawGrid draws floor lines that scroll with the camera so movement reads
// even in an empty arena.
func (g *Game) drawGrid(screen *ebiten.Image) {
	for x := float32(g.grid.X); x < config.ScreenWidth; x += gridCell {
		vector.StrokeLine(screen, x, 0, x, config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := float32(g.grid.Y); y < config.ScreenHeight; y += gridCell {
		vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 1, config.GridColor, false)
	}
}

// wrapGrid keeps the accumulated world shift inside one cell.
func wrapGrid(v cp.Vector) cp.Vector {
	wrap := func(f float64) float64 {
		f = math.Mod(f, gridCell)
		if f < 0 {
			f += gridCell
		}
		return f
	}
	return cp.Vector{X: wrap(v.X), Y: wrap(v.Y)}
}

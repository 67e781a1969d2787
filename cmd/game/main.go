// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-tank-arena/internal/app"
	"go-tank-arena/internal/assets"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/defs"
	"go-tank-arena/internal/player"
	"go-tank-arena/internal/state"
	"go-tank-arena/pkg/render"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "tank and wave definitions (YAML); empty uses the built-in set")
	seed := flag.Int64("seed", 0, "spawn seed; 0 picks one from the clock")
	watch := flag.Bool("watch", false, "reload -defs when the file changes")
	debug := flag.Bool("debug", false, "verbose logging")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "arena",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *pprofAddr != "" {
		go func() {
			log.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Fail fast on a broken file before opening the window.
	lib, err := defs.Load(*defsPath)
	if err != nil {
		log.Fatal("cannot load definitions", "path", *defsPath, "err", err)
	}
	log.Info("definitions loaded", "path", *defsPath, "tanks", len(lib.Tanks), "waves", len(lib.Level.Waves))

	var watcher *defs.Watcher
	if *watch && *defsPath != "" {
		w, err := defs.NewWatcher(*defsPath, config.DefsWatchDebounceMillis*time.Millisecond)
		if err != nil {
			log.Fatal("cannot watch definitions", "path", *defsPath, "err", err)
		}
		defer w.Close()
		watcher = w
	}

	face, err := render.LoadFace(config.HUDFontSize)
	if err != nil {
		log.Fatal("cannot load HUD font", "err", err)
	}

	newGame := func() (*app.Game, error) {
		lib, err := defs.Load(*defsPath)
		if err != nil {
			return nil, err
		}
		log.Debug("starting arena", "seed", *seed, "tanks", len(lib.Tanks))
		return app.NewGame(app.Options{
			Library:  lib,
			Seed:     *seed,
			Input:    player.Keyboard{},
			Textures: assets.NewTextureManager(),
			Font:     face,
			Watcher:  watcher,
		})
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewArenaState(sm, newGame))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetTPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal("game loop", "err", err)
	}
}

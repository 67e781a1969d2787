// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score. R starts a new arena.
type GameOverState struct {
	stateMachine *StateMachine
	arena        *ArenaState
}

func NewGameOverState(sm *StateMachine, arena *ArenaState) *GameOverState {
	return &GameOverState{stateMachine: sm, arena: arena}
}

func (s *GameOverState) Enter() {
	if g := s.arena.Game(); g != nil {
		log.Info("game over", "score", g.Score(), "wave", g.WaveSystem.Wave())
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	if !anyJustPressed(ebiten.KeyR) {
		return
	}
	factory := s.arena.newGame
	s.arena.Close()
	s.stateMachine.SetState(NewArenaState(s.stateMachine, factory))
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.arena.Draw(screen)
	score := 0
	if g := s.arena.Game(); g != nil {
		score = g.Score()
	}
	drawOverlay(screen, fmt.Sprintf("GAME OVER  score %d  press R", score))
}

func (s *GameOverState) Exit() {}

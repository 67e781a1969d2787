// internal/state/arena_state.go
package state

import (
	"go-tank-arena/internal/app"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameFactory builds a fresh arena session.
type GameFactory func() (*app.Game, error)

var _ State = (*ArenaState)(nil)

// ArenaState runs the fight. The session is created on first Enter and kept
// across pauses.
type ArenaState struct {
	stateMachine *StateMachine
	newGame      GameFactory
	game         *app.Game
}

func NewArenaState(sm *StateMachine, newGame GameFactory) *ArenaState {
	return &ArenaState{stateMachine: sm, newGame: newGame}
}

func (s *ArenaState) Game() *app.Game { return s.game }

func (s *ArenaState) Enter() {
	if s.game != nil {
		return
	}
	game, err := s.newGame()
	if err != nil {
		log.Fatal("cannot start arena", "err", err)
	}
	s.game = game
}

func (s *ArenaState) Update(deltaTime float64) {
	if anyJustPressed(pauseKeys...) {
		s.stateMachine.SetState(NewPauseState(s.stateMachine, s))
		return
	}
	s.game.Update(deltaTime)
	if s.game.Over() {
		s.stateMachine.SetState(NewGameOverState(s.stateMachine, s))
	}
}

func (s *ArenaState) Draw(screen *ebiten.Image) {
	if s.game != nil {
		s.game.Draw(screen)
	}
}

func (s *ArenaState) Exit() {}

// Close ends the session for good.
func (s *ArenaState) Close() {
	if s.game != nil {
		s.game.Close()
		s.game = nil
	}
}

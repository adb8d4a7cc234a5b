package interpreter

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"robogrid/internal/logging"
)

// WinFunc is called once per session, when the robot first reaches the target.
type WinFunc func(s *Session)

// Session is the state a script runs against: the board, the variables and
// the console that receives every command outcome.
type Session struct {
	ID      string
	Board   *Board
	Env     *Environment
	Console *logging.Console

	setup  Setup
	logger *slog.Logger
	onWin  WinFunc
	won    bool
}

// NewSession builds a board from setup. onWin may be nil.
func NewSession(setup Setup, logger *slog.Logger, onWin WinFunc) (*Session, error) {
	s := &Session{
		Env:    NewEnvironment(),
		setup:  setup,
		logger: logger,
		onWin:  onWin,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	spec, err := s.setup.BoardSpec()
	if err != nil {
		return fmt.Errorf("board setup: %w", err)
	}
	board, err := NewBoard(spec)
	if err != nil {
		return fmt.Errorf("board setup: %w", err)
	}
	s.Board = board
	s.ID = uuid.NewString()
	s.Console = logging.NewConsole(s.logger.With(slog.String(logging.SessionKey, s.ID)))
	s.won = false
	return nil
}

// Reset rebuilds the board, clears variables and the win latch, and starts a
// new session id.
func (s *Session) Reset() error {
	if err := s.build(); err != nil {
		return err
	}
	s.Env.Reset()
	s.Log("Jogo reiniciado. Carregue um script ou configure o jogo.", false)
	return nil
}

// Log reports a message to the console.
func (s *Session) Log(message string, isError bool) {
	s.Console.Log(message, isError)
}

// CheckWin fires the win event if the robot is on the target. The event
// fires at most once per session.
func (s *Session) CheckWin() bool {
	if !s.Board.AtTarget() {
		return false
	}
	if !s.won {
		s.won = true
		s.Log("Chegou ao destino", false)
		if s.onWin != nil {
			s.onWin(s)
		}
	}
	return true
}

// Won reports whether the win event has fired in this session.
func (s *Session) Won() bool {
	return s.won
}

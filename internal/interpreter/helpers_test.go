package interpreter

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"robogrid/internal/logging"
)

type fixture struct {
	session    *Session
	interp     *Interpreter
	transcript *logging.Transcript
	wins       int
}

func newFixture(t *testing.T, spec BoardSpec) *fixture {
	t.Helper()
	f := &fixture{transcript: logging.NewTranscript()}
	logger := logging.New("error", "text", io.Discard, f.transcript)
	s, err := NewSession(FixedSetup(spec), logger, func(*Session) { f.wins++ })
	require.NoError(t, err)
	in, err := New(s)
	require.NoError(t, err)
	f.session, f.interp = s, in
	return f
}

// openBoard is a 10x10 board without obstacles, robot at (0,0), target at (9,9).
func openBoard(obstacles ...Position) BoardSpec {
	return BoardSpec{
		Size:      10,
		Robot:     Position{0, 0},
		Target:    Position{9, 9},
		Obstacles: obstacles,
	}
}

func (f *fixture) robot() Position {
	return f.session.Board.Robot()
}

package interpreter

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomObstacles(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	robot, target := Position{0, 0}, Position{4, 4}
	got := RandomObstacles(5, 200, robot, target, rng)

	require.LessOrEqual(t, len(got), 23)
	seen := map[Position]bool{}
	for _, p := range got {
		require.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
		require.NotEqual(t, robot, p)
		require.NotEqual(t, target, p)
		require.True(t, p.X >= 0 && p.X < 5 && p.Y >= 0 && p.Y < 5, "out of bounds %s", p)
	}

	b, err := NewBoard(BoardSpec{Size: 5, Robot: robot, Target: target, Obstacles: got})
	require.NoError(t, err)
	require.Len(t, b.Obstacles(), len(got))
}

func TestRandomSetupIsDeterministicForASeed(t *testing.T) {
	setup := func() RandomSetup {
		return RandomSetup{
			Size:      10,
			Obstacles: 15,
			Target:    Position{9, 9},
			Rand:      rand.New(rand.NewPCG(7, 7)),
		}
	}
	a, err := setup().BoardSpec()
	require.NoError(t, err)
	b, err := setup().BoardSpec()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRandomSetupSolvable(t *testing.T) {
	setup := RandomSetup{
		Size:      6,
		Obstacles: 12,
		Target:    Position{5, 5},
		Solvable:  true,
		Rand:      rand.New(rand.NewPCG(3, 4)),
	}
	for range 10 {
		spec, err := setup.BoardSpec()
		require.NoError(t, err)
		b, err := NewBoard(spec)
		require.NoError(t, err)
		require.True(t, b.Reachable())
	}
}

func TestRandomSetupGivesUp(t *testing.T) {
	// A thousand draws on a 3x3 board fill every free cell, walling the
	// robot in on each attempt.
	setup := RandomSetup{
		Size:      3,
		Obstacles: 1000,
		Target:    Position{2, 2},
		Solvable:  true,
		Rand:      rand.New(rand.NewPCG(1, 1)),
	}
	_, err := setup.BoardSpec()
	require.ErrorIs(t, err, ErrInvalidBoard)
}

func TestFixedSetupCopiesObstacles(t *testing.T) {
	setup := FixedSetup(openBoard(Position{1, 1}))
	spec, err := setup.BoardSpec()
	require.NoError(t, err)
	spec.Obstacles[0] = Position{2, 2}
	again, err := setup.BoardSpec()
	require.NoError(t, err)
	require.Equal(t, []Position{{1, 1}}, again.Obstacles)
}

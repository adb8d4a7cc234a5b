package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSenseObstacles(t *testing.T) {
	tests := []struct {
		name     string
		spec     BoardSpec
		expected []Direction
	}{
		{
			name:     "corner reports nothing",
			spec:     openBoard(),
			expected: nil,
		},
		{
			name: "all four sides",
			spec: BoardSpec{
				Size:      5,
				Robot:     Position{2, 2},
				Target:    Position{4, 4},
				Obstacles: []Position{{1, 2}, {3, 2}, {2, 1}, {2, 3}},
			},
			expected: []Direction{Up, Down, Left, Right},
		},
		{
			name: "diagonals ignored",
			spec: BoardSpec{
				Size:      5,
				Robot:     Position{2, 2},
				Target:    Position{4, 4},
				Obstacles: []Position{{1, 1}, {3, 3}, {1, 3}, {3, 1}},
			},
			expected: nil,
		},
		{
			name:     "below and right of corner",
			spec:     openBoard(Position{1, 0}, Position{0, 1}),
			expected: []Direction{Down, Right},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.expected, b.SenseObstacles().List())
		})
	}
}

// At the board edge the sensor sees no obstacle, yet moving off the edge fails.
func TestEdgeIsNeitherObstacleNorFree(t *testing.T) {
	f := newFixture(t, openBoard())

	sensed := f.session.Board.SenseObstacles()
	require.False(t, sensed.Has(Up))
	require.False(t, sensed.Has(Left))

	require.NoError(t, f.interp.Interpret("SE OBSTACULO CIMA MOVER BAIXO 1"))
	require.Equal(t, Position{0, 0}, f.robot())

	require.ErrorIs(t, f.interp.Interpret("MOVER CIMA 1"), ErrOutOfBounds)
	require.Equal(t, Position{0, 0}, f.robot())
}

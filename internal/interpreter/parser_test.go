package interpreter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	src := `
# practice board
size 6
ROBOT 1 1
Target 5 5
OBSTACLE 2 2
OBSTACLE 3 4 # trailing comment
`
	spec, err := ParseBoard("board.txt", strings.NewReader(src))
	require.NoError(t, err)

	want := BoardSpec{
		Size:      6,
		Robot:     Position{1, 1},
		Target:    Position{5, 5},
		Obstacles: []Position{{2, 2}, {3, 4}},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBoardDefaultsRobotToOrigin(t *testing.T) {
	spec, err := ParseBoard("board.txt", strings.NewReader("SIZE 3\nTARGET 2 2\n"))
	require.NoError(t, err)
	require.Equal(t, Position{0, 0}, spec.Robot)
	require.Empty(t, spec.Obstacles)
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing size", "TARGET 2 2"},
		{"missing target", "SIZE 3"},
		{"size twice", "SIZE 3\nSIZE 4\nTARGET 2 2"},
		{"robot twice", "SIZE 3\nROBOT 0 0\nROBOT 1 1\nTARGET 2 2"},
		{"target twice", "SIZE 3\nTARGET 2 2\nTARGET 1 1"},
		{"unknown directive", "SIZE 3\nWALL 1 1\nTARGET 2 2"},
		{"missing coordinate", "SIZE 3\nTARGET 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard("board.txt", strings.NewReader(tt.src))
			require.Error(t, err)
		})
	}
}

func TestParsedBoardBuilds(t *testing.T) {
	spec, err := ParseBoard("board.txt", strings.NewReader("SIZE 3\nTARGET 2 2\nOBSTACLE 2 2\n"))
	require.NoError(t, err)
	_, err = NewBoard(spec)
	require.ErrorIs(t, err, ErrInvalidBoard)
}

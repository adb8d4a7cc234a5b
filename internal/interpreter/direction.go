package interpreter

import "strings"

// Direction is one of the eight movement directions of the command language.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Delta is the per-step displacement of a direction.
type Delta struct {
	DX, DY int
}

func (d Delta) Plus(o Delta) Delta {
	return Delta{DX: d.DX + o.DX, DY: d.DY + o.DY}
}

func (d Delta) Times(n int) Delta {
	return Delta{DX: d.DX * n, DY: d.DY * n}
}

var (
	upDelta    = Delta{DX: -1}
	downDelta  = Delta{DX: 1}
	leftDelta  = Delta{DY: -1}
	rightDelta = Delta{DY: 1}
)

var directionDeltas = [...]Delta{
	Up:        upDelta,
	Down:      downDelta,
	Left:      leftDelta,
	Right:     rightDelta,
	UpLeft:    upDelta.Plus(leftDelta),
	UpRight:   upDelta.Plus(rightDelta),
	DownLeft:  downDelta.Plus(leftDelta),
	DownRight: downDelta.Plus(rightDelta),
}

var directionNames = [...]string{
	Up:        "CIMA",
	Down:      "BAIXO",
	Left:      "ESQUERDA",
	Right:     "DIREITA",
	UpLeft:    "CIMA-ESQUERDA",
	UpRight:   "CIMA-DIREITA",
	DownLeft:  "BAIXO-ESQUERDA",
	DownRight: "BAIXO-DIREITA",
}

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

// axisDirections are the neighbours the obstacle sensor looks at.
var axisDirections = []Direction{Up, Down, Left, Right}

func (d Direction) Delta() Delta {
	return directionDeltas[d]
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "DESCONHECIDA"
	}
	return directionNames[d]
}

// ParseDirection matches a direction token case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToUpper(s)
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, true
		}
	}
	return 0, false
}

// DirectionSet is a set of directions.
type DirectionSet uint8

func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

func (s DirectionSet) List() []Direction {
	var out []Direction
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

package interpreter

import "fmt"

// Position is a board coordinate. X is the row, Y the column, so "up"
// decreases X.
type Position struct {
	X, Y int
}

func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Robot is the robot on the board. Only a committed move changes it.
type Robot struct {
	Position
}

func NewRobot(at Position) *Robot {
	return &Robot{Position: at}
}

func (r *Robot) moveTo(p Position) {
	r.Position = p
}

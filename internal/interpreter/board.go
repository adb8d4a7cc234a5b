package interpreter

import "fmt"

// Cell is the occupancy of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Obstacle
)

// BoardSpec describes a board before it is built. It is what the board setup
// collaborators produce.
type BoardSpec struct {
	Size      int
	Robot     Position
	Target    Position
	Obstacles []Position
}

// Board is a size x size grid with a robot, a fixed target and obstacles.
// The robot and target cells are never obstacles, and every obstacle cell
// appears exactly once in the obstacle list.
type Board struct {
	size      int
	cells     [][]Cell
	obstacles []Position
	robot     *Robot
	target    Position
}

// NewBoard builds a board from spec. Duplicate obstacles are dropped.
func NewBoard(spec BoardSpec) (*Board, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidBoard, spec.Size)
	}
	b := &Board{
		size:   spec.Size,
		cells:  make([][]Cell, spec.Size),
		target: spec.Target,
	}
	for x := range b.cells {
		b.cells[x] = make([]Cell, spec.Size)
	}
	if !b.InBounds(spec.Robot) {
		return nil, fmt.Errorf("%w: robot %s outside %dx%d board", ErrInvalidBoard, spec.Robot, spec.Size, spec.Size)
	}
	if !b.InBounds(spec.Target) {
		return nil, fmt.Errorf("%w: target %s outside %dx%d board", ErrInvalidBoard, spec.Target, spec.Size, spec.Size)
	}
	b.robot = NewRobot(spec.Robot)
	for _, p := range spec.Obstacles {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("%w: obstacle %s outside %dx%d board", ErrInvalidBoard, p, spec.Size, spec.Size)
		}
		if p == spec.Robot || p == spec.Target {
			return nil, fmt.Errorf("%w: obstacle %s on robot or target", ErrInvalidBoard, p)
		}
		if b.cells[p.X][p.Y] == Obstacle {
			continue
		}
		b.cells[p.X][p.Y] = Obstacle
		b.obstacles = append(b.obstacles, p)
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Robot() Position {
	return b.robot.Position
}

func (b *Board) Target() Position {
	return b.target
}

// Obstacles returns the obstacle coordinates in placement order.
func (b *Board) Obstacles() []Position {
	return append([]Position(nil), b.obstacles...)
}

func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// IsObstacle reports whether p holds an obstacle. Cells outside the board
// are not obstacles.
func (b *Board) IsObstacle(p Position) bool {
	return b.InBounds(p) && b.cells[p.X][p.Y] == Obstacle
}

// IsFree reports whether the robot may stand on p.
func (b *Board) IsFree(p Position) bool {
	return b.InBounds(p) && b.cells[p.X][p.Y] == Empty
}

func (b *Board) AtTarget() bool {
	return b.robot.Position == b.target
}

// Reachable reports whether the target can be reached from the robot by
// single steps in any of the eight directions.
func (b *Board) Reachable() bool {
	start := b.robot.Position
	visited := map[Position]bool{start: true}
	q := []Position{start}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur == b.target {
			return true
		}
		for _, d := range Directions {
			next := cur.Add(d.Delta())
			if b.IsFree(next) && !visited[next] {
				visited[next] = true
				q = append(q, next)
			}
		}
	}
	return false
}

package interpreter

import (
	"fmt"
	"math/rand/v2"
)

// Setup supplies the board layout for a session. It is consulted when the
// session starts and again on every reset.
type Setup interface {
	BoardSpec() (BoardSpec, error)
}

// FixedSetup always produces the same layout.
type FixedSetup BoardSpec

func (f FixedSetup) BoardSpec() (BoardSpec, error) {
	spec := BoardSpec(f)
	spec.Obstacles = append([]Position(nil), f.Obstacles...)
	return spec, nil
}

// maxSolvableAttempts bounds how many layouts RandomSetup tries before
// giving up on a reachable target.
const maxSolvableAttempts = 100

// RandomSetup scatters obstacles over the board.
type RandomSetup struct {
	Size      int
	Obstacles int
	Robot     Position
	Target    Position
	// Solvable keeps drawing layouts until the target is reachable.
	Solvable bool
	Rand     *rand.Rand
}

func (r RandomSetup) BoardSpec() (BoardSpec, error) {
	spec := BoardSpec{Size: r.Size, Robot: r.Robot, Target: r.Target}
	if !r.Solvable {
		spec.Obstacles = RandomObstacles(r.Size, r.Obstacles, r.Robot, r.Target, r.Rand)
		return spec, nil
	}
	for range maxSolvableAttempts {
		spec.Obstacles = RandomObstacles(r.Size, r.Obstacles, r.Robot, r.Target, r.Rand)
		b, err := NewBoard(spec)
		if err != nil {
			return BoardSpec{}, err
		}
		if b.Reachable() {
			return spec, nil
		}
	}
	return BoardSpec{}, fmt.Errorf("%w: no reachable layout with %d obstacles after %d attempts",
		ErrInvalidBoard, r.Obstacles, maxSolvableAttempts)
}

// RandomObstacles draws count cells at random, skipping the robot and target
// cells and cells already drawn. Fewer than count positions may come back.
func RandomObstacles(size, count int, robot, target Position, rng *rand.Rand) []Position {
	if size <= 0 {
		return nil
	}
	taken := make(map[Position]bool, count)
	var out []Position
	for range count {
		p := Position{X: rng.IntN(size), Y: rng.IntN(size)}
		if p == robot || p == target || taken[p] {
			continue
		}
		taken[p] = true
		out = append(out, p)
	}
	return out
}

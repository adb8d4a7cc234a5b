package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// Display draws the board: R robot, T target, # obstacle, . empty.
func (b *Board) Display(w io.Writer, elapsed time.Duration) {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "\033[H\033[2J")
	fmt.Fprintf(bw, "Timer: %ds\n", int(elapsed.Seconds()))
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			p := Position{X: x, Y: y}
			switch {
			case p == b.robot.Position:
				fmt.Fprint(bw, "R ")
			case p == b.target:
				fmt.Fprint(bw, "T ")
			case b.cells[x][y] == Obstacle:
				fmt.Fprint(bw, "# ")
			default:
				fmt.Fprint(bw, ". ")
			}
		}
		fmt.Fprintln(bw)
	}
	bw.Flush()
}

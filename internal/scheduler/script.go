package scheduler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"robogrid/internal/interpreter"
)

// LoadScript reads one command per line, dropping blank lines.
func LoadScript(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// RunDirect interprets every non-blank line immediately, without pacing,
// and stops as soon as the robot reaches the target. It returns how many
// lines failed.
func RunDirect(session *interpreter.Session, interp Interpreter, lines []string) int {
	failed := 0
	for _, line := range lines {
		if session.Won() {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := interp.Interpret(line); err != nil {
			failed++
		}
	}
	return failed
}

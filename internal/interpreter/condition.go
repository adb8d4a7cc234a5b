package interpreter

import "strings"

const (
	condObstacle = "OBSTACULO"
	condRobot    = "ROBO"
	goalMeta     = "META"
)

// evalCondition evaluates an SE predicate. An unknown condition is an
// error, which is distinct from the predicate being false.
func (s *Session) evalCondition(condition, expected string) (bool, error) {
	condition = strings.ToUpper(condition)
	expected = strings.ToUpper(expected)
	switch condition {
	case condObstacle:
		dir, ok := ParseDirection(expected)
		if !ok {
			return false, nil
		}
		return s.Board.SenseObstacles().Has(dir), nil
	case condRobot:
		if expected != goalMeta {
			return false, nil
		}
		met := s.Board.AtTarget()
		s.CheckWin()
		return met, nil
	default:
		return false, newError(ErrUnknownCommand, "Condição desconhecida: %s", condition)
	}
}

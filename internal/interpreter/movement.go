package interpreter

// Move walks steps cells in dir from the robot's position. Every
// intermediate cell must be inside the board and free; the first one that is
// not aborts the whole move and the robot stays where it was. On success the
// robot is placed on the final cell.
func (b *Board) Move(dir Direction, steps int) (Position, error) {
	from := b.robot.Position
	cur := from
	for step := 1; step <= steps; step++ {
		cur = cur.Add(dir.Delta())
		if !b.InBounds(cur) {
			return from, newError(ErrOutOfBounds, "Movimento fora do tabuleiro!")
		}
		if b.cells[cur.X][cur.Y] == Obstacle {
			return from, newError(ErrCollision, "Colidiu com um obstáculo no caminho!")
		}
	}
	b.robot.moveTo(cur)
	return cur, nil
}

func (s *Session) move(dirToken string, steps int) error {
	dir, ok := ParseDirection(dirToken)
	if !ok {
		return newError(ErrUnknownDirection, "Direção desconhecida!")
	}
	to, err := s.Board.Move(dir, steps)
	if err != nil {
		return err
	}
	s.Log("Movendo o robô para posição "+to.String(), false)
	s.CheckWin()
	return nil
}

package interpreter

// SenseObstacles reports which of the four axis neighbours of the robot hold
// an obstacle. A neighbour off the board is not an obstacle, unlike in Move
// where leaving the board fails.
func (b *Board) SenseObstacles() DirectionSet {
	var set DirectionSet
	for _, d := range axisDirections {
		if b.IsObstacle(b.robot.Add(d.Delta())) {
			set = set.With(d)
		}
	}
	return set
}

package engine

import "github.com/wricardo/mcp-training/mazegame/game/maze"

// CanMoveTo checks if the player can stand on the specified coordinates
func (s *Session) CanMoveTo(pos maze.Position) bool {
	cell, ok := s.grid.At(pos)
	if !ok {
		return false
	}
	// Only walls are obstacles
	return cell != maze.Wall
}

// CanMove checks if a move in the given direction would succeed
func (s *Session) CanMove(direction Direction) bool {
	if s.state.Terminal() {
		return false
	}
	dx, dy := direction.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	return s.CanMoveTo(s.pos.Offset(dx, dy))
}

// PossibleMoves returns all directions the player can currently move in
func (s *Session) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if s.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// move attempts a step in direction and then runs the exit check.
// The exit check runs even when the step is blocked.
func (s *Session) move(cmd Command, direction Direction) Outcome {
	from := s.pos
	dx, dy := direction.Delta()
	target := from.Offset(dx, dy)

	success := s.CanMoveTo(target)
	signal := SignalBlocked
	if success {
		s.pos = target
		signal = SignalMoved
	}

	s.addMoveToHistory(direction, from, s.pos, success)

	if cell, _ := s.grid.At(s.pos); cell == maze.Exit {
		s.state = Won
	}

	return Outcome{
		Command: cmd,
		Signal:  signal,
		State:   s.state,
		From:    from,
		To:      s.pos,
		Target:  &target,
	}
}

// addMoveToHistory records a move attempt
func (s *Session) addMoveToHistory(direction Direction, from, to maze.Position, success bool) {
	s.history = append(s.history, MoveHistoryEntry{
		Direction:  direction,
		From:       from,
		To:         to,
		Success:    success,
		MoveNumber: len(s.history) + 1,
	})
}

package engine

import (
	"errors"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

var (
	// ErrSessionClosed is returned when a command reaches a session that has
	// already been won or quit. Callers should treat it as a bug in the
	// driving loop.
	ErrSessionClosed = errors.New("session closed")

	// ErrNilGrid is returned by NewSession when no grid is given
	ErrNilGrid = errors.New("grid cannot be nil")
)

// Session is a single play-through of a maze. It is not safe for
// concurrent use.
type Session struct {
	grid    *maze.Grid
	pos     maze.Position
	state   State
	history []MoveHistoryEntry
}

// NewSession creates an active session positioned on the grid's start cell
func NewSession(grid *maze.Grid) (*Session, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	return &Session{
		grid:  grid,
		pos:   grid.Start(),
		state: Active,
	}, nil
}

// Grid returns the maze being played
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// Position returns the current player position
func (s *Session) Position() maze.Position {
	return s.pos
}

// State returns the current session state
func (s *Session) State() State {
	return s.state
}

// IsOver returns whether the session reached a terminal state
func (s *Session) IsOver() bool {
	return s.state.Terminal()
}

// Apply runs a single command.
//
// Moves update the position when the target is inside the grid and not a
// wall, and always end with an exit check. ShowMap and unrecognized input
// leave the session untouched. Once the session is won or quit every call
// returns ErrSessionClosed.
func (s *Session) Apply(cmd Command) (Outcome, error) {
	if s.state.Terminal() {
		return Outcome{}, ErrSessionClosed
	}

	if direction, ok := cmd.Direction(); ok {
		return s.move(cmd, direction), nil
	}

	outcome := Outcome{
		Command: cmd,
		From:    s.pos,
		To:      s.pos,
	}

	switch cmd.Kind {
	case QuitGame:
		s.state = Quit
		outcome.Signal = SignalQuit
	case ShowMap:
		outcome.Signal = SignalShowMap
	default:
		outcome.Signal = SignalInvalidInput
	}

	outcome.State = s.state
	return outcome, nil
}

// ApplyAll runs commands in order and stops after the first one that ends
// the session. It returns the outcomes of the commands that ran.
func (s *Session) ApplyAll(cmds []Command) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(cmds))

	for _, cmd := range cmds {
		outcome, err := s.Apply(cmd)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)

		if outcome.State.Terminal() {
			break
		}
	}

	return outcomes, nil
}

// Render draws the maze with the marker on the current position
func (s *Session) Render() string {
	return maze.Render(s.grid, s.pos)
}

// History returns a copy of the move history
func (s *Session) History() []MoveHistoryEntry {
	return append([]MoveHistoryEntry(nil), s.history...)
}

// LastMove returns the last move attempt, or nil if there were none
func (s *Session) LastMove() *MoveHistoryEntry {
	if len(s.history) == 0 {
		return nil
	}
	last := s.history[len(s.history)-1]
	return &last
}

package engine

import "strings"

// CommandKind identifies what a command asks the session to do
type CommandKind int

const (
	Unrecognized CommandKind = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	ShowMap
	QuitGame
)

// String returns a human-readable command name
func (k CommandKind) String() string {
	switch k {
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case ShowMap:
		return "show_map"
	case QuitGame:
		return "quit"
	default:
		return "unrecognized"
	}
}

// Command is a single player instruction. Raw holds the original input.
type Command struct {
	Kind CommandKind `json:"kind"`
	Raw  string      `json:"raw,omitempty"`
}

// Usage is the short hint shown after unrecognized input
const Usage = "Use W/A/S/D to move, M to show the map, Q to quit"

// ParseCommand maps a case-insensitive input token to a command.
// Surrounding whitespace is ignored; anything else is Unrecognized.
func ParseCommand(input string) Command {
	cmd := Command{Raw: input}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w":
		cmd.Kind = MoveUp
	case "a":
		cmd.Kind = MoveLeft
	case "s":
		cmd.Kind = MoveDown
	case "d":
		cmd.Kind = MoveRight
	case "m":
		cmd.Kind = ShowMap
	case "q":
		cmd.Kind = QuitGame
	default:
		cmd.Kind = Unrecognized
	}

	return cmd
}

// MoveCommand returns the command that moves in direction d
func MoveCommand(d Direction) Command {
	switch d {
	case Up:
		return Command{Kind: MoveUp}
	case Down:
		return Command{Kind: MoveDown}
	case Left:
		return Command{Kind: MoveLeft}
	case Right:
		return Command{Kind: MoveRight}
	}
	return Command{Kind: Unrecognized, Raw: string(d)}
}

// Direction returns the movement direction of a move command
func (c Command) Direction() (Direction, bool) {
	switch c.Kind {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	}
	return "", false
}

// IsMove reports whether the command is one of the four moves
func (c Command) IsMove() bool {
	_, ok := c.Direction()
	return ok
}

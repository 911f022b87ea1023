package engine

import "github.com/wricardo/mcp-training/mazegame/game/maze"

// State represents the lifecycle state of a session
type State int

const (
	Active State = iota
	Won
	Quit
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further commands are accepted in this state
func (s State) Terminal() bool {
	return s == Won || s == Quit
}

// Direction is a movement direction
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the x,y offset of the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Signal tells the caller what feedback a command produced
type Signal string

const (
	SignalMoved        Signal = "moved"
	SignalBlocked      Signal = "blocked"
	SignalShowMap      Signal = "show_map"
	SignalInvalidInput Signal = "invalid_input"
	SignalQuit         Signal = "quit"
)

// Outcome is the result of applying one command
type Outcome struct {
	Command Command       `json:"command"`
	Signal  Signal        `json:"signal"`
	State   State         `json:"state"`
	From    maze.Position `json:"from"`
	To      maze.Position `json:"to"`

	// Target is the cell a move command tried to enter, set only for moves
	Target *maze.Position `json:"target,omitempty"`
}

// Won reports whether this command ended the game at the exit
func (o Outcome) Won() bool {
	return o.State == Won
}

// MoveHistoryEntry represents a single move attempt in the session history
type MoveHistoryEntry struct {
	Direction  Direction     `json:"direction"`
	From       maze.Position `json:"from"`
	To         maze.Position `json:"to"`
	Success    bool          `json:"success"`
	MoveNumber int           `json:"move_number"`
}

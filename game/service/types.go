package service

import (
	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

// MaxBulkMoves limits the number of moves accepted in one BulkMove call
const MaxBulkMoves = 50

// Messages holds the text shown to the player
type Messages struct {
	Welcome      string `json:"welcome"`
	Usage        string `json:"usage"`
	Moved        string `json:"moved"`
	Blocked      string `json:"blocked"`
	InvalidInput string `json:"invalid_input"`
	Victory      string `json:"victory"`
	Goodbye      string `json:"goodbye"`
	MapHeader    string `json:"map_header"`
	Prompt       string `json:"prompt"`
}

// DefaultMessages returns the standard English messages
func DefaultMessages() Messages {
	return Messages{
		Welcome:      "Welcome to the maze!",
		Usage:        engine.Usage,
		Moved:        "Moved.",
		Blocked:      "You can't move there.",
		InvalidInput: "Invalid input.",
		Victory:      "Congratulations! You escaped the maze!",
		Goodbye:      "Goodbye.",
		MapHeader:    "Current map (X marks your position):",
		Prompt:       "Enter a move: ",
	}
}

// Result contains the result of a single command
type Result struct {
	Outcome  engine.Outcome `json:"outcome"`
	Message  string         `json:"message"`
	Map      string         `json:"map,omitempty"` // Rendered only for ShowMap
	GameOver bool           `json:"game_over"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	RequestedMoves int        `json:"requested_moves"`
	MovesExecuted  int        `json:"moves_executed"`
	Results        []*Result  `json:"results"`
	StoppedReason  string     `json:"stopped_reason,omitempty"`
	GameState      *GameState `json:"game_state"`
}

// GameState is a read-only snapshot of a game
type GameState struct {
	ID            string             `json:"id"`
	MazeName      string             `json:"maze_name"`
	State         string             `json:"state"`
	Position      maze.Position      `json:"position"`
	Width         int                `json:"width"`
	Height        int                `json:"height"`
	PossibleMoves []engine.Direction `json:"possible_moves,omitempty"`
	TotalMoves    int                `json:"total_moves"`
	GameOver      bool               `json:"game_over"`
	Victory       bool               `json:"victory"`
	Map           string             `json:"map"`
}

package service

import (
	"context"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

// GameService defines the game operations used by front ends
type GameService interface {
	// Identity
	ID() string
	MazeName() string
	Grid() *maze.Grid

	// Game Operations
	Execute(ctx context.Context, input string) (*Result, error)
	Apply(ctx context.Context, cmd engine.Command) (*Result, error)
	BulkMove(ctx context.Context, moves []engine.Direction) (*BulkMoveResult, error)

	// Game State
	State() *GameState
	History() []engine.MoveHistoryEntry
	IsOver() bool

	// Presentation
	Messages() Messages
	Welcome() string
}

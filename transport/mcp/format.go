package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

// Formatting helpers

func formatGameState(state *service.GameState, grid *maze.Grid) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Maze: %s (%dx%d) | Position: (%d,%d) | Moves: %d | State: %s\n",
		state.MazeName, state.Width, state.Height,
		state.Position.X, state.Position.Y, state.TotalMoves, state.State)

	if len(state.PossibleMoves) > 0 {
		b.WriteString("Possible moves: ")
		b.WriteString(joinDirections(state.PossibleMoves))
		b.WriteString("\n")
	}

	if grid != nil {
		b.WriteString("Local 3x3:\n")
		b.WriteString(formatLocal3x3(grid, state.Position))
	}

	b.WriteString("\n")
	b.WriteString(state.Map)

	if state.GameOver {
		if state.Victory {
			b.WriteString("\n🎉 VICTORY!")
		} else {
			b.WriteString("\n🏳️ QUIT")
		}
	}

	return b.String()
}

func formatResult(result *service.Result, state *service.GameState, grid *maze.Grid) string {
	var b strings.Builder

	outcome := result.Outcome
	switch outcome.Signal {
	case engine.SignalMoved:
		fmt.Fprintf(&b, "✓ Move successful: (%d,%d)→(%d,%d)\n", outcome.From.X, outcome.From.Y, outcome.To.X, outcome.To.Y)
	case engine.SignalBlocked:
		b.WriteString("✗ Move failed\n")
		if outcome.Target != nil {
			fmt.Fprintf(&b, "Blocked: attempted (%d,%d) tile=%s\n", outcome.Target.X, outcome.Target.Y, describeTile(grid, *outcome.Target))
		}
	}

	b.WriteString("Message: ")
	b.WriteString(result.Message)
	b.WriteString("\n")

	if result.Map != "" {
		b.WriteString(result.Map)
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(state, grid))
	return b.String()
}

func formatBulkMoveResult(result *service.BulkMoveResult, grid *maze.Grid) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves)
	if result.StoppedReason != "" {
		fmt.Fprintf(&b, "Stopped: %s\n", result.StoppedReason)
	}

	if len(result.Results) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for i, r := range result.Results {
			b.WriteString(formatStepLine(i+1, r.Outcome, grid))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState, grid))
	return b.String()
}

// formatStepLine renders a single compact step line
func formatStepLine(idx int, outcome engine.Outcome, grid *maze.Grid) string {
	status := "✓"
	target := outcome.To
	if outcome.Signal == engine.SignalBlocked {
		status = "✗"
		if outcome.Target != nil {
			target = *outcome.Target
		}
	}

	dir, _ := outcome.Command.Direction()
	return fmt.Sprintf("%d. %s (%d,%d)→(%d,%d) tile=%s %s\n",
		idx, dir, outcome.From.X, outcome.From.Y, target.X, target.Y, describeTile(grid, target), status)
}

// formatLocal3x3 renders a 3x3 character window centered on the player
func formatLocal3x3(grid *maze.Grid, pos maze.Position) string {
	var b strings.Builder
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				b.WriteRune(rune(maze.Marker))
				continue
			}
			b.WriteRune(rune(tileAt(grid, pos.Offset(dx, dy))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// tileAt returns the symbol at p, treating out-of-bounds cells as walls
func tileAt(grid *maze.Grid, p maze.Position) maze.Symbol {
	if grid == nil {
		return maze.Wall
	}
	symbol, ok := grid.At(p)
	if !ok {
		return maze.Wall
	}
	return symbol
}

func describeTile(grid *maze.Grid, p maze.Position) string {
	if grid == nil || !grid.InBounds(p) {
		return "boundary"
	}
	return tileAt(grid, p).Name()
}

func formatCell(pos maze.Position, symbol maze.Symbol, player maze.Position) string {
	description := ""
	switch symbol {
	case maze.Wall:
		description = "Wall - IMPASSABLE"
	case maze.Open:
		description = "Open floor - safe to walk"
	case maze.Start:
		description = "Start cell - where the game began"
	case maze.Exit:
		description = "Exit - step here to win"
	}
	if pos == player {
		description += " (you are here)"
	}

	return fmt.Sprintf(`Cell at position (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Character: %q
Type: %s
Passable: %v
Description: %s`,
		pos.X, pos.Y,
		string(rune(symbol)),
		symbol.Name(),
		symbol.IsPassable(),
		description)
}

func formatHistory(history []engine.MoveHistoryEntry, page, limit int) string {
	total := len(history)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d) | Total: %d\n\n", page, totalPages, total)

	if page > totalPages {
		if total == 0 {
			b.WriteString("(no moves yet)\n")
		}
		return b.String()
	}

	start := (page - 1) * limit
	if start >= total {
		if total == 0 {
			b.WriteString("(no moves yet)\n")
		}
		return b.String()
	}

	end := start + limit
	if end > total {
		end = total
	}
	for _, move := range history[start:end] {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		fmt.Fprintf(&b, "%d. %s (%d,%d)→(%d,%d) %s\n",
			move.MoveNumber, move.Direction, move.From.X, move.From.Y, move.To.X, move.To.Y, status)
	}

	return b.String()
}

func joinDirections(dirs []engine.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return strings.Join(names, ",")
}

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var directionEnum = []string{"up", "down", "left", "right"}

// Server exposes a single game as MCP tools
type Server struct {
	game      service.GameService
	logger    logr.Logger
	mcpServer *server.MCPServer

	// mu serializes tool calls onto the one session
	mu sync.Mutex
}

// NewServer creates an MCP server for game
func NewServer(game service.GameService, version string, logger logr.Logger) *Server {
	s := &Server{
		game:   game,
		logger: logger.WithName("mcp"),
	}

	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		"Maze Game",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(`Maze Game - MCP Interface

GAME OBJECTIVE:
Walk from the start (S) to the exit (E). Walls (#) block movement.

AVAILABLE TOOLS:
- game_state: Current position, possible moves and the map
- move: Single move (up/down/left/right) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- command: Send raw console input (w/a/s/d/m/q)
- show_map: Print the map with X at your position
- quit: End the game
- move_history: View past moves
- describe_cell: Inspect a single cell
- game_instructions: Full rules

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the player one cell in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        directionEnum,
					"description": "Direction to move",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: fmt.Sprintf("Execute up to %d moves in sequence, stopping when the game ends", service.MaxBulkMoves),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": directionEnum,
					},
					"description": "Array of moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"moves"},
		},
	}, s.handleBulkMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "command",
		Description: "Send one line of console input: w/a/s/d to move, m for the map, q to quit",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"input": map[string]interface{}{
					"type":        "string",
					"description": "Raw input line",
				},
			},
			Required: []string{"input"},
		},
	}, s.handleCommand)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "show_map",
		Description: "Show the maze with X marking the player",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleShowMap)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "quit",
		Description: "Quit the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleQuit)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the move history",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
		},
	}, s.handleMoveHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific cell in the maze, including whether it is passable.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to describe (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to describe (0-based)",
				},
			},
			Required: []string{"x", "y"},
		},
	}, s.handleDescribeCell)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", "game", s.game.ID(), "maze", s.game.MazeName())
	return server.ServeStdio(s.mcpServer)
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// closedError turns a rejected command into a tool error
func (s *Server) closedError(err error) *mcp.CallToolResult {
	if errors.Is(err, engine.ErrSessionClosed) {
		state := s.game.State()
		return mcp.NewToolResultError(fmt.Sprintf("The game is over (%s). Restart the server to play again.", state.State))
	}
	return mcp.NewToolResultError(err.Error())
}

// Tool handlers

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return mcp.NewToolResultText(formatGameState(s.game.State(), s.game.Grid())), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	cmd := engine.MoveCommand(engine.Direction(strings.ToLower(direction)))
	if !cmd.IsMove() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid direction %q, use one of: %s", direction, strings.Join(directionEnum, ", "))), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.V(1).Info("move", "direction", direction, "intent", intent)
	result, err := s.game.Apply(ctx, cmd)
	if err != nil {
		return s.closedError(err), nil
	}

	return mcp.NewToolResultText(formatResult(result, s.game.State(), s.game.Grid())), nil
}

func (s *Server) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)

	moves := make([]engine.Direction, 0, len(movesRaw))
	for _, m := range movesRaw {
		move, _ := m.(string)
		moves = append(moves, engine.Direction(strings.ToLower(move)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.IsOver() {
		return s.closedError(engine.ErrSessionClosed), nil
	}

	s.logger.V(1).Info("bulk move", "moves", len(moves), "intent", intent)
	result, err := s.game.BulkMove(ctx, moves)
	if err != nil {
		return s.closedError(err), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(result, s.game.Grid())), nil
}

func (s *Server) handleCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	input, _ := args["input"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.game.Execute(ctx, input)
	if err != nil {
		return s.closedError(err), nil
	}

	return mcp.NewToolResultText(formatResult(result, s.game.State(), s.game.Grid())), nil
}

func (s *Server) handleShowMap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.game.Apply(ctx, engine.Command{Kind: engine.ShowMap})
	if err != nil {
		return s.closedError(err), nil
	}

	return mcp.NewToolResultText(result.Message + "\n" + result.Map), nil
}

func (s *Server) handleQuit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.game.Apply(ctx, engine.Command{Kind: engine.QuitGame})
	if err != nil {
		return s.closedError(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\nMoves made: %d", result.Message, s.game.State().TotalMoves)), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.game.History()

	limit := defaultHistoryLimit
	if l, ok := args["limit"].(float64); ok && l >= 1 {
		limit = int(min(l, maxHistoryLimit))
	}

	// Pages past the end all render the same, so clamp before converting
	page := 1
	if p, ok := args["page"].(float64); ok && p >= 1 {
		page = int(min(p, float64(len(history)/limit+2)))
	}

	return mcp.NewToolResultText(formatHistory(history, page, limit)), nil
}

func (s *Server) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	x, okX := args["x"].(float64)
	y, okY := args["y"].(float64)
	if !okX || !okY {
		return mcp.NewToolResultError("x and y are required integers"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid := s.game.Grid()
	pos := maze.Position{X: int(x), Y: int(y)}
	symbol, ok := grid.At(pos)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Maze is %dx%d (x 0-%d, y 0-%d)",
			pos.X, pos.Y, grid.Width(), grid.Height(), grid.Width()-1, grid.Height()-1)), nil
	}

	return mcp.NewToolResultText(formatCell(pos, symbol, s.game.State().Position)), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `Maze Game - Complete Instructions

GAME OBJECTIVE:
Walk from the start cell (S) to the exit (E). Reaching the exit wins the game.

MAP LEGEND:
• # - Wall (impassable)
• (space) - Open floor (passable)
• S - Start (passable)
• E - Exit (passable, goal)
• X - Your current position (shown only on rendered maps)

MOVEMENT COMMANDS:
• up / w - move one row up (y-1)
• down / s - move one row down (y+1)
• left / a - move one column left (x-1)
• right / d - move one column right (x+1)
Moving into a wall or off the maze is blocked: you stay where you are.

OTHER COMMANDS:
• m - show the map
• q - quit the game

COORDINATES:
(x, y) with (0, 0) at the top-left corner. x grows to the right, y grows downwards.

STRATEGY:
- Call game_state first and read the map row by row
- Use describe_cell to confirm a cell before planning a long route
- Prefer bulk_move once a corridor is clear; it stops as soon as you escape

VICTORY CONDITIONS:
The game is won the moment you step onto E. After that, or after quitting,
every command is rejected.`

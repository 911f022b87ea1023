package mcp

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/game/service"
	"github.com/wricardo/mcp-training/mazegame/telemetry"
)

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	grid, err := maze.Load([]string{
		"#####",
		"#S  #",
		"# # #",
		"#  E#",
		"#####",
	})
	require.NoError(t, err)

	game, err := service.NewGame("reg_5x5", grid, service.WithTracer(telemetry.NoopTracer()))
	require.NoError(t, err)

	return NewServer(game, "test", logr.Discard())
}

func call(t *testing.T, h handler, name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	result, err := h(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestNewServer(t *testing.T) {
	s := newTestServer(t)
	assert.NotNil(t, s.MCPServer())
}

func TestServer_handleGameState(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleGameState, "game_state", map[string]interface{}{})
	assert.False(t, isErr)
	assert.Contains(t, text, "Position: (1,1)")
	assert.Contains(t, text, "Possible moves: down,right")
	assert.Contains(t, text, "###\n#X \n# #\n")
	assert.Contains(t, text, "#X  #")
}

func TestServer_handleMove(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleMove, "move", map[string]interface{}{"direction": "right", "intent": "head east"})
	assert.False(t, isErr)
	assert.Contains(t, text, "✓ Move successful: (1,1)→(2,1)")

	text, isErr = call(t, s.handleMove, "move", map[string]interface{}{"direction": "up"})
	assert.False(t, isErr)
	assert.Contains(t, text, "✗ Move failed")
	assert.Contains(t, text, "Blocked: attempted (2,0) tile=wall")

	text, isErr = call(t, s.handleMove, "move", map[string]interface{}{"direction": "north"})
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid direction")
}

func TestServer_handleBulkMove(t *testing.T) {
	s := newTestServer(t)

	moves := []interface{}{"right", "right", "down", "down", "left"}
	text, isErr := call(t, s.handleBulkMove, "bulk_move", map[string]interface{}{"moves": moves})
	assert.False(t, isErr)
	assert.Contains(t, text, "Executed 4/5 moves")
	assert.Contains(t, text, "Stopped:")
	assert.Contains(t, text, "4. down (3,2)→(3,3) tile=exit ✓")
	assert.Contains(t, text, "🎉 VICTORY!")

	text, isErr = call(t, s.handleBulkMove, "bulk_move", map[string]interface{}{"moves": []interface{}{"up"}})
	assert.True(t, isErr)
	assert.Contains(t, text, "The game is over (won)")
}

func TestServer_handleBulkMove_Invalid(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleBulkMove, "bulk_move", map[string]interface{}{"moves": []interface{}{}})
	assert.True(t, isErr)
	assert.Contains(t, text, service.ErrNoMoves.Error())

	text, isErr = call(t, s.handleBulkMove, "bulk_move", map[string]interface{}{"moves": []interface{}{"right", 7}})
	assert.True(t, isErr)
	assert.Contains(t, text, "unknown direction")
}

func TestServer_handleCommand(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleCommand, "command", map[string]interface{}{"input": "S"})
	assert.False(t, isErr)
	assert.Contains(t, text, "Message: Moved.")

	text, isErr = call(t, s.handleCommand, "command", map[string]interface{}{"input": "jump"})
	assert.False(t, isErr)
	assert.Contains(t, text, "Invalid input.")

	text, isErr = call(t, s.handleCommand, "command", map[string]interface{}{"input": "m"})
	assert.False(t, isErr)
	assert.Contains(t, text, "#####\n#S  #\n#X# #\n#  E#\n#####\n")
}

func TestServer_handleShowMap(t *testing.T) {
	s := newTestServer(t)

	first, isErr := call(t, s.handleShowMap, "show_map", map[string]interface{}{})
	assert.False(t, isErr)
	second, _ := call(t, s.handleShowMap, "show_map", map[string]interface{}{})

	assert.Equal(t, first, second)
	assert.Contains(t, first, "#X  #")
}

func TestServer_handleQuit(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleQuit, "quit", map[string]interface{}{})
	assert.False(t, isErr)
	assert.Contains(t, text, "Goodbye.")

	text, isErr = call(t, s.handleMove, "move", map[string]interface{}{"direction": "right"})
	assert.True(t, isErr)
	assert.Contains(t, text, "The game is over (quit)")

	_, isErr = call(t, s.handleShowMap, "show_map", map[string]interface{}{})
	assert.True(t, isErr)

	text, isErr = call(t, s.handleGameState, "game_state", map[string]interface{}{})
	assert.False(t, isErr)
	assert.Contains(t, text, "🏳️ QUIT")
}

func TestServer_handleMoveHistory(t *testing.T) {
	s := newTestServer(t)

	text, _ := call(t, s.handleMoveHistory, "move_history", map[string]interface{}{})
	assert.Contains(t, text, "(no moves yet)")

	call(t, s.handleMove, "move", map[string]interface{}{"direction": "right"})
	call(t, s.handleMove, "move", map[string]interface{}{"direction": "up"})
	call(t, s.handleMove, "move", map[string]interface{}{"direction": "right"})

	text, _ = call(t, s.handleMoveHistory, "move_history", map[string]interface{}{"page": float64(2), "limit": float64(2)})
	assert.Contains(t, text, "Move History (Page 2/2) | Total: 3")
	assert.Contains(t, text, "3. right (2,1)→(3,1) ✓")
	assert.NotContains(t, text, "1. right")

	t.Run("out of range arguments", func(t *testing.T) {
		tests := []struct {
			name string
			args map[string]interface{}
			want string
		}{
			{"huge limit", map[string]interface{}{"limit": 1e19}, "Move History (Page 1/1) | Total: 3"},
			{"huge page", map[string]interface{}{"page": 1e19, "limit": float64(2)}, "| Total: 3"},
			{"huge page and limit", map[string]interface{}{"page": 1e19, "limit": 1e19}, "| Total: 3"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				text, isErr := call(t, s.handleMoveHistory, "move_history", test.args)
				assert.False(t, isErr)
				assert.Contains(t, text, test.want)
			})
		}

		text, _ := call(t, s.handleMoveHistory, "move_history", map[string]interface{}{"limit": 1e19})
		assert.Contains(t, text, "1. right (1,1)→(2,1) ✓")
		assert.Contains(t, text, "3. right (2,1)→(3,1) ✓")
	})
}

func TestServer_handleDescribeCell(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		x, y     float64
		contains []string
		isErr    bool
	}{
		{"wall", 0, 0, []string{"Type: wall", "Passable: false"}, false},
		{"start with player", 1, 1, []string{"Type: start", "(you are here)"}, false},
		{"exit", 3, 3, []string{"Type: exit", "Passable: true"}, false},
		{"out of bounds", 5, 0, []string{"out of bounds"}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text, isErr := call(t, s.handleDescribeCell, "describe_cell", map[string]interface{}{"x": test.x, "y": test.y})
			assert.Equal(t, test.isErr, isErr)
			for _, want := range test.contains {
				assert.Contains(t, text, want)
			}
		})
	}

	_, isErr := call(t, s.handleDescribeCell, "describe_cell", map[string]interface{}{})
	assert.True(t, isErr)
}

func TestServer_handleGameInstructions(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s.handleGameInstructions, "game_instructions", map[string]interface{}{})
	assert.False(t, isErr)

	for _, section := range []string{"GAME OBJECTIVE:", "MAP LEGEND:", "MOVEMENT COMMANDS:", "VICTORY CONDITIONS:"} {
		assert.Contains(t, text, section)
	}
}

func TestFormatHistory_Empty(t *testing.T) {
	text := formatHistory(nil, 1, defaultHistoryLimit)
	assert.Contains(t, text, "Page 1/1")
	assert.Contains(t, text, "(no moves yet)")
}

// Package mcp exposes a maze game over the Model Context Protocol.
//
// The server wraps exactly one service.GameService and serves it over stdio,
// so an AI agent can play the same game a person would play on the console.
//
// MCP Tools:
//   - game_state: position, possible moves, local 3x3 view and map
//   - move: single directional movement
//   - bulk_move: several moves in sequence, stopping when the game ends
//   - command: raw console input (w/a/s/d/m/q)
//   - show_map: the map with X at the player position
//   - quit: end the game
//   - move_history: paginated move history
//   - describe_cell: details of one cell
//   - game_instructions: rules and legend
//
// Once the game is won or quit, every tool that issues a command returns a
// tool error. game_state, move_history and describe_cell keep working.
//
// Usage:
//
//	srv := mcp.NewServer(game, Version, logger)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
//
// Logs must never be written to stdout in this mode; stdout carries the
// protocol.
package mcp

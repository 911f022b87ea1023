// Package service provides the game layer shared by every front end.
//
// The service package implements:
//   - Command execution on a single engine.Session
//   - Player-facing messages for each outcome
//   - Structured logging and tracing of every command
//   - Bulk moves with a per-call limit
//   - Read-only game snapshots for transports
//
// Architecture:
//
// The service layer sits between the transports (console, MCP) and the
// engine. Transports hand raw input or typed commands to a GameService and
// print what comes back; they never touch the engine directly.
//
// Usage:
//
//	game, err := service.NewGame("reg_5x5", grid, service.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(game.Welcome())
//	result, err := game.Execute(ctx, "d")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Message)
//
// Errors:
//
// Executing a command after the game ended returns an error wrapping
// engine.ErrSessionClosed. Front ends stop their loops on GameOver and
// should never see it.
package service

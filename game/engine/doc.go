// Package engine provides the play-through state machine for the maze game.
//
// A Session starts Active on the maze's start cell and accepts commands
// until it reaches a terminal state:
//
//	Active --q--------------------> Quit
//	Active --move onto exit-------> Won
//	Active --move / m / other-----> Active
//
// Moves step one cell up, down, left or right. A move into a wall or off the
// grid is blocked and leaves the position unchanged. After every move,
// blocked or not, the session checks whether the player stands on the exit.
// ShowMap and unrecognized input never change anything.
//
// Usage:
//
//	sess, err := engine.NewSession(grid)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := sess.Apply(engine.ParseCommand("d"))
//	if err != nil {
//		// the caller kept sending commands after the game ended
//	}
//	if outcome.Signal == engine.SignalShowMap {
//		fmt.Print(sess.Render())
//	}
//
// Commands arrive as values and results leave as Outcome values, so the
// console and MCP front ends share the same logic and tests need no I/O.
package engine

// Package maze provides the maze model and loader for the maze game.
//
// The maze package implements:
//   - Parsing of line-based maze text into an immutable Grid
//   - Structural validation (dimensions, rectangularity, symbols)
//   - Start and exit discovery with uniqueness checks
//   - Render-time marker overlay for the player position
//   - Simple layout statistics
//
// Maze Format:
//
// A maze is plain text, one row per line, using four symbols:
//
//	#  wall
//	   open path (space)
//	S  start, exactly one
//	E  exit, exactly one
//
// Height and width must each be between MinSize and MaxSize and every row
// must have the same length.
//
// Usage:
//
//	grid, err := maze.LoadFile("mazes/reg_5x5.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Print(maze.Render(grid, grid.Start()))
//
// Validation runs in two phases. Dimension checks (height, width,
// rectangularity) come first, then a single left-to-right, top-to-bottom
// scan checks symbols and start/exit uniqueness. Missing start or exit is
// reported only after the scan completes.
package maze

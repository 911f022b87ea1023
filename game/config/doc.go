// Package config provides maze catalog management for the maze game.
//
// The config package handles:
//   - Loading maze files by name from a maze directory
//   - Caching validated grids
//   - Listing available mazes, valid or not
//   - Resolving a command-line maze argument to a file or catalog entry
//
// Catalog Layout:
//
// Mazes are stored as .txt files in the maze directory (default "mazes").
// The file name without extension is the maze ID:
//
//	mazes/
//	  reg_5x5.txt     -> "reg_5x5"
//	  medium_11x9.txt -> "medium_11x9"
//
// Usage:
//
//	manager, err := config.NewManager("mazes")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	grid, err := manager.LoadMaze(ctx, "reg_5x5")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mazes, err := manager.ListMazes(ctx)
//
// Validation errors from the maze package are passed through untouched so
// the reason can be shown to the player as is.
package config
